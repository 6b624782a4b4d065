package challenges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=challenges_test

const (
	rotationLockName = "challenge-rotation"
	rotationLockTTL  = time.Minute
	DefaultStandings = 20
	MaxStandings     = 100
)

type store interface {
	ActiveAt(ctx context.Context, at time.Time) (*Challenge, error)
	Create(ctx context.Context, c Challenge) (*Challenge, bool, error)
	Join(ctx context.Context, challengeID, userID uuid.UUID, at time.Time) (*Participation, error)
	Participation(ctx context.Context, challengeID, userID uuid.UUID) (*Participation, error)
	RecordContribution(ctx context.Context, c *Challenge, userID uuid.UUID, sourceID string, value float64, at time.Time) (bool, error)
	Standings(ctx context.Context, challengeID uuid.UUID, limit int) ([]Standing, error)
}

type locker interface {
	WithLock(ctx context.Context, name string, ttl time.Duration, fn func(ctx context.Context) error) error
}

type Service struct {
	store          store
	locker         locker
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(store store, locker locker, metricsManager *metrics.Manager, loc *time.Location) *Service {
	return &Service{
		store:          store,
		locker:         locker,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// EnsureCurrent returns the challenge active at now, creating this week's
// challenge first if needed. Creation normally runs under a distributed lock;
// when redis is unavailable or the holder is still busy it goes straight to
// the store, where the unique start time rejects duplicates.
func (s *Service) EnsureCurrent(ctx context.Context, now time.Time) (_ *Challenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.ensure")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	current, err := s.store.ActiveAt(ctx, now)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, ErrNoActiveChallenge) {
		return nil, err
	}

	plan := PlanForWeek(pkg.WeekStart(now, s.loc))
	ran := false
	err = s.locker.WithLock(ctx, rotationLockName, rotationLockTTL, func(ctx context.Context) error {
		ran = true
		return s.create(ctx, plan)
	})
	switch {
	case ran && err != nil:
		return nil, err
	case !ran:
		if err != nil {
			log.Warnf("rotation lock unavailable, creating challenge without it: %s", err)
		}
		span.SetAttributes(attribute.Bool("lockless", true))
		if err := s.create(ctx, plan); err != nil {
			return nil, err
		}
	}

	return s.store.ActiveAt(ctx, now)
}

func (s *Service) create(ctx context.Context, plan Challenge) error {
	created, isNew, err := s.store.Create(ctx, plan)
	if err != nil {
		return fmt.Errorf("create challenge: %w", err)
	}
	if isNew {
		s.metricsManager.CounterChallengesRotated.Inc()
		log.Infof("new weekly challenge %s [%s], starts %s", created.Title, created.Metric, created.StartsAt)
	}
	return nil
}

// Rotate is the scheduled job entry point.
func (s *Service) Rotate(ctx context.Context) error {
	c, err := s.EnsureCurrent(ctx, s.now())
	if err != nil {
		return err
	}
	log.Debugf("current challenge: %s (%s - %s)", c.Title, c.StartsAt, c.EndsAt)
	return nil
}

func (s *Service) Current(ctx context.Context) (*Challenge, error) {
	return s.EnsureCurrent(ctx, s.now())
}

func (s *Service) Join(ctx context.Context, userID uuid.UUID) (_ *Participation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.join")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := s.now()
	c, err := s.EnsureCurrent(ctx, now)
	if err != nil {
		return nil, err
	}
	return s.store.Join(ctx, c.ID, userID, now)
}

// RecordWorkout credits a completed workout to the challenge active at the
// completion time. A workout in the current week creates that week's
// challenge when rotation has not run yet. Replays of the same session are
// no-ops, and nothing is recorded once that challenge has ended.
func (s *Service) RecordWorkout(ctx context.Context, userID, sessionID uuid.UUID, m WorkoutMetrics, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var c *Challenge
	if pkg.WeekStart(at, s.loc).Equal(pkg.WeekStart(s.now(), s.loc)) {
		c, err = s.EnsureCurrent(ctx, at)
	} else {
		c, err = s.store.ActiveAt(ctx, at)
	}
	if errors.Is(err, ErrNoActiveChallenge) {
		log.Debugf("no challenge active at %s, skipping session %s", at, sessionID)
		return nil
	}
	if err != nil {
		return err
	}
	if !c.ActiveAt(s.now()) {
		log.Debugf("challenge %s already ended, skipping session %s", c.ID, sessionID)
		return nil
	}

	value := m.Value(c.Metric)
	if value <= 0 {
		return nil
	}

	recorded, err := s.store.RecordContribution(ctx, c, userID, sessionID.String(), value, at)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Bool("recorded", recorded), attribute.Float64("value", value))
	return nil
}

func (s *Service) Standings(ctx context.Context, limit int) (_ *Challenge, _ []Standing, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.standings")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if limit <= 0 {
		limit = DefaultStandings
	}
	limit = min(limit, MaxStandings)

	c, err := s.EnsureCurrent(ctx, s.now())
	if err != nil {
		return nil, nil, err
	}
	standings, err := s.store.Standings(ctx, c.ID, limit)
	if err != nil {
		return nil, nil, err
	}
	return c, standings, nil
}

func (s *Service) Participation(ctx context.Context, userID uuid.UUID) (_ *Participation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.participation")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	c, err := s.EnsureCurrent(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return s.store.Participation(ctx, c.ID, userID)
}
