package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/app"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivityUnregister is the minimal interface needed to remove a participant.
type ActivityUnregister interface {
	Unregister(ctx context.Context, in app.UnregisterInput) (domain.Activity, error)
}

// HandleUnregister returns an HTTP handler for
// DELETE /activities/{name}/unregister.
func HandleUnregister(svc ActivityUnregister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		email := r.URL.Query().Get("email")
		if email == "" {
			writeError(w, http.StatusUnprocessableEntity, codeEmailRequired, domain.ErrEmailRequired.Error())
			return
		}

		_, err := svc.Unregister(r.Context(), app.UnregisterInput{
			Activity: name,
			Email:    email,
		})
		if err != nil {
			switch err {
			case domain.ErrActivityNotFound:
				writeError(w, http.StatusNotFound, codeActivityNotFound, err.Error())
				return
			case domain.ErrNotSignedUp:
				writeError(w, http.StatusBadRequest, codeNotSignedUp, err.Error())
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
			Message: fmt.Sprintf("Removed %s from %s", email, name),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
