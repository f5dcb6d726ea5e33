package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/app"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivitySignup is the minimal interface needed to sign a participant up.
type ActivitySignup interface {
	Signup(ctx context.Context, in app.SignupInput) (domain.Activity, error)
}

// HandleSignup returns an HTTP handler for POST /activities/{name}/signup.
func HandleSignup(svc ActivitySignup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		email := r.URL.Query().Get("email")
		if email == "" {
			writeError(w, http.StatusUnprocessableEntity, codeEmailRequired, domain.ErrEmailRequired.Error())
			return
		}

		_, err := svc.Signup(r.Context(), app.SignupInput{
			Activity: name,
			Email:    email,
		})
		if err != nil {
			switch err {
			case domain.ErrActivityNotFound:
				writeError(w, http.StatusNotFound, codeActivityNotFound, err.Error())
				return
			case domain.ErrAlreadySignedUp:
				writeError(w, http.StatusBadRequest, codeAlreadySignedUp, err.Error())
				return
			case domain.ErrActivityFull:
				writeError(w, http.StatusBadRequest, codeActivityFull, err.Error())
				return
			case domain.ErrEmailRequired:
				writeError(w, http.StatusUnprocessableEntity, codeEmailRequired, err.Error())
				return
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
		}

		resp := messageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
