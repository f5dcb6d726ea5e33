package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/app"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/storage/memory"
)

// newTestMux wires a fresh seeded registry through the same routes main uses.
func newTestMux(t *testing.T, opts ...app.ActivityServiceOption) *http.ServeMux {
	t.Helper()

	registry := memory.NewRegistry(memory.Seed())
	svc := app.NewActivityService(registry, zap.NewNop(), opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthHandler)
	mux.Handle("GET /activities", HandleListActivities(svc))
	mux.Handle("POST /activities/{name}/signup", HandleSignup(svc))
	mux.Handle("DELETE /activities/{name}/unregister", HandleUnregister(svc))
	mux.HandleFunc("GET /{$}", RootHandler)
	mux.Handle("/", NotFoundHandler())
	return mux
}

func listActivities(t *testing.T, mux *http.ServeMux) map[string]domain.Activity {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestAPI_ChessClubScenario(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)

	initial := listActivities(t, mux)
	require.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		initial["Chess Club"].Participants,
	)

	// New signup succeeds and appends at the end.
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var msg struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
	assert.Contains(t, msg.Message, "newstudent@mergington.edu")
	assert.Contains(t, msg.Message, "Chess Club")

	after := listActivities(t, mux)
	chess := after["Chess Club"].Participants
	require.Len(t, chess, 3)
	assert.Equal(t, "newstudent@mergington.edu", chess[2])

	// Duplicate signup fails with 400 and leaves the roster unchanged.
	req = httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	assert.Contains(t, errBody.Detail, "already signed up")
	assert.Len(t, listActivities(t, mux)["Chess Club"].Participants, 3)

	// Unregister removes the participant.
	req = httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, listActivities(t, mux)["Chess Club"].Participants, "michael@mergington.edu")

	// Unknown activity is a 404 regardless of email validity.
	req = httptest.NewRequest(http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=x@y.edu", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_SignupAndUnregisterRoundTrip(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)

	before := listActivities(t, mux)["Drama Club"].Participants

	req := httptest.NewRequest(http.MethodPost, "/activities/Drama%20Club/signup?email=testuser@mergington.edu", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/activities/Drama%20Club/unregister?email=testuser@mergington.edu", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before, listActivities(t, mux)["Drama Club"].Participants)
}

func TestAPI_MultipleSignupsAcrossActivities(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)

	joins := []string{"Chess%20Club", "Programming%20Class", "Soccer%20Team"}
	for _, activity := range joins {
		req := httptest.NewRequest(http.MethodPost, "/activities/"+activity+"/signup?email=multisport@mergington.edu", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	activities := listActivities(t, mux)
	for _, name := range []string{"Chess Club", "Programming Class", "Soccer Team"} {
		assert.Contains(t, activities[name].Participants, "multisport@mergington.edu", name)
	}
}

func TestAPI_MissingEmailIs422(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAPI_RootRedirect(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/static/index.html", rec.Header().Get("Location"))
}

func TestAPI_CapacityEnforcementOptIn(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, app.WithCapacityEnforcement())

	// Mathletes seeds 2 of 10; fill the remaining seats.
	for i := 0; i < 8; i++ {
		target := "/activities/Mathletes/signup?email=student" + string(rune('a'+i)) + "@mergington.edu"
		req := httptest.NewRequest(http.MethodPost, target, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/activities/Mathletes/signup?email=overflow@mergington.edu", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "activity is full")
}
