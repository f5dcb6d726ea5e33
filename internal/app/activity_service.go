package app

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/metrics"
)

type ActivityRepository interface {
	List(ctx context.Context) (map[string]domain.Activity, error)
	Get(ctx context.Context, name string) (domain.Activity, error)
	Update(ctx context.Context, name string, fn func(*domain.Activity) error) (domain.Activity, error)
}

type ActivityService struct {
	repo            ActivityRepository
	log             *zap.Logger
	enforceCapacity bool
}

func NewActivityService(repo ActivityRepository, log *zap.Logger, opts ...ActivityServiceOption) *ActivityService {
	svc := &ActivityService{
		repo: repo,
		log:  log,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type ActivityServiceOption func(*ActivityService)

// WithCapacityEnforcement makes signups fail with ErrActivityFull once a
// roster reaches MaxParticipants. Off by default: the stock behavior treats
// capacity as informational only.
func WithCapacityEnforcement() ActivityServiceOption {
	return func(s *ActivityService) {
		s.enforceCapacity = true
	}
}

// List returns every activity with its current roster.
func (s *ActivityService) List(ctx context.Context) (map[string]domain.Activity, error) {
	return s.repo.List(ctx)
}

type SignupInput struct {
	Activity string
	Email    string
}

// Signup appends the email to the activity's roster, preserving signup order.
func (s *ActivityService) Signup(ctx context.Context, in SignupInput) (domain.Activity, error) {
	if in.Email == "" {
		return domain.Activity{}, domain.ErrEmailRequired
	}

	updated, err := s.repo.Update(ctx, in.Activity, func(a *domain.Activity) error {
		if slices.Contains(a.Participants, in.Email) {
			return domain.ErrAlreadySignedUp
		}
		if s.enforceCapacity && len(a.Participants) >= a.MaxParticipants {
			return domain.ErrActivityFull
		}
		a.Participants = append(a.Participants, in.Email)
		return nil
	})

	metrics.SignupsTotal.WithLabelValues(in.Activity, outcomeFor(err)).Inc()
	if err != nil {
		return domain.Activity{}, err
	}

	s.log.Info("participant signed up",
		zap.String("activity", in.Activity),
		zap.String("email", in.Email),
		zap.Int("roster_size", len(updated.Participants)),
	)
	return updated, nil
}

type UnregisterInput struct {
	Activity string
	Email    string
}

// Unregister removes the email from the activity's roster.
func (s *ActivityService) Unregister(ctx context.Context, in UnregisterInput) (domain.Activity, error) {
	if in.Email == "" {
		return domain.Activity{}, domain.ErrEmailRequired
	}

	updated, err := s.repo.Update(ctx, in.Activity, func(a *domain.Activity) error {
		i := slices.Index(a.Participants, in.Email)
		if i < 0 {
			return domain.ErrNotSignedUp
		}
		a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
		return nil
	})

	metrics.UnregistersTotal.WithLabelValues(in.Activity, outcomeFor(err)).Inc()
	if err != nil {
		return domain.Activity{}, err
	}

	s.log.Info("participant removed",
		zap.String("activity", in.Activity),
		zap.String("email", in.Email),
		zap.Int("roster_size", len(updated.Participants)),
	)
	return updated, nil
}

func outcomeFor(err error) string {
	switch err {
	case nil:
		return "ok"
	case domain.ErrActivityNotFound:
		return "not_found"
	case domain.ErrAlreadySignedUp, domain.ErrNotSignedUp:
		return "conflict"
	case domain.ErrActivityFull:
		return "full"
	default:
		return "error"
	}
}
