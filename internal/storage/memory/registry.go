package memory

import (
	"context"
	"sync"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"
)

// Registry is an in-memory activity store. The activity set is fixed at
// construction and lives for the process lifetime; only each activity's
// participant roster mutates. A single lock guards the whole map, which is
// plenty for a handful of records and keeps concurrent signups from racing
// on the roster slice.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewRegistry builds an isolated registry from the given seed. The seed is
// deep-copied so callers can reuse the same fixture across instances.
func NewRegistry(seed map[string]domain.Activity) *Registry {
	activities := make(map[string]*domain.Activity, len(seed))
	for name, activity := range seed {
		cloned := activity.Clone()
		activities[name] = &cloned
	}
	return &Registry{activities: activities}
}

// List returns a detached copy of every activity keyed by name.
func (r *Registry) List(_ context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns a detached copy of the named activity.
func (r *Registry) Get(_ context.Context, name string) (domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Update applies fn to the named activity under the write lock and returns
// the updated record. fn receives a working copy; an error from fn discards
// the copy, so a failed update leaves the stored record untouched.
func (r *Registry) Update(_ context.Context, name string, fn func(*domain.Activity) error) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return domain.Activity{}, err
	}

	*current = next
	return next.Clone(), nil
}
