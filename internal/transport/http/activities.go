package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivityLister is the minimal interface needed to list activities.
type ActivityLister interface {
	List(ctx context.Context) (map[string]domain.Activity, error)
}

// HandleListActivities returns an HTTP handler serving the full activity
// catalog with current rosters.
func HandleListActivities(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(activities)
	}
}
