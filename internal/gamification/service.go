package gamification

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/challenges"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=gamification_test

const (
	resyncAttempts = 3
	// badge points can unlock further badges, e.g. points_1k
	badgeRounds = 3
	// tolerated client clock skew for completed_at
	maxClockSkew = 5 * time.Minute
)

type store interface {
	StartSession(ctx context.Context, userID uuid.UUID, ns NewSession, startedAt time.Time) (*Session, error)
	CompleteSession(ctx context.Context, userID, sessionID uuid.UUID, c WorkoutCompletion, points int, completedAt time.Time) (*CompletionResult, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	Resync(ctx context.Context, userID uuid.UUID, now time.Time) (*UserStats, error)
	BadgeCatalog(ctx context.Context) ([]Badge, error)
	EarnedBadges(ctx context.Context, userID uuid.UUID) ([]UserBadge, error)
	AwardBadges(ctx context.Context, userID uuid.UUID, badges []Badge, at time.Time) ([]Badge, error)
	UpsertSteps(ctx context.Context, userID uuid.UUID, day time.Time, steps int) error
}

type challengeRecorder interface {
	RecordWorkout(ctx context.Context, userID, sessionID uuid.UUID, m challenges.WorkoutMetrics, at time.Time) error
}

type Service struct {
	store          store
	challenges     challengeRecorder
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	store store,
	challenges challengeRecorder,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	return &Service{
		store:          store,
		challenges:     challenges,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *Service) StartWorkout(ctx context.Context, userID uuid.UUID, ns NewSession) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.workout.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	startedAt := s.now()
	if ns.StartedAt != nil {
		startedAt = ns.StartedAt.Time
	}
	session, err := s.store.StartSession(ctx, userID, ns, startedAt)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return session, nil
}

// CompleteWorkout commits the completion atomically, then runs the follow-up
// steps (challenge progress, badges) one after the other. Follow-up failures
// are logged and flagged in the result, the completion itself stays.
func (s *Service) CompleteWorkout(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	c WorkoutCompletion,
) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.workout.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := s.now()
	completedAt := now
	if c.CompletedAt != nil {
		if c.CompletedAt.After(now.Add(maxClockSkew)) {
			return nil, fmt.Errorf("%w: completed_at in the future", ErrInvalidCompletion)
		}
		completedAt = c.CompletedAt.Time
	}

	points := CalculateWorkoutPoints(c)
	result, err := s.store.CompleteSession(ctx, userID, sessionID, c, points, completedAt)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	if result.NewBadges == nil {
		result.NewBadges = []Badge{}
	}

	span.SetAttributes(
		attribute.Bool("duplicate", result.Duplicate),
		attribute.Int("points", result.PointsAwarded),
	)
	if result.Duplicate {
		log.Debugf("replayed completion for session %s", sessionID)
		s.metricsManager.CounterDuplicateCompletions.Inc()
		return result, nil
	}

	s.metricsManager.CounterWorkoutsCompleted.Inc()
	s.metricsManager.CounterPointsAwarded.Add(float64(points))

	if s.challenges != nil {
		m := challenges.WorkoutMetrics{
			CaloriesBurned:     c.CaloriesBurned,
			ExercisesCompleted: c.ExercisesCompleted,
			TotalVolumeKg:      c.TotalVolumeKg,
			Points:             points,
		}
		if err := s.challenges.RecordWorkout(ctx, userID, sessionID, m, completedAt); err != nil {
			log.Errorf("record challenge progress for session %s: %s", sessionID, err)
			s.metricsManager.CounterFollowUpFailures.WithLabelValues("challenge").Inc()
			result.ChallengePending = true
		}
	}

	newBadges, err := s.CheckAndAwardBadges(ctx, userID)
	if err != nil {
		log.Errorf("award badges after session %s: %s", sessionID, err)
		s.metricsManager.CounterFollowUpFailures.WithLabelValues("badges").Inc()
		result.BadgesPending = true
	} else {
		result.NewBadges = newBadges
		for _, b := range newBadges {
			result.Stats.TotalPoints += int64(b.Points)
		}
	}

	return result, nil
}

// CheckAndAwardBadges awards every catalog badge the user now qualifies for
// and returns only the newly awarded ones.
func (s *Service) CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) (_ []Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.badges.check")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	catalog, err := s.store.BadgeCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("badge catalog: %w", err)
	}
	earnedBadges, err := s.store.EarnedBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("earned badges: %w", err)
	}
	earned := make(map[string]bool, len(earnedBadges))
	for _, b := range earnedBadges {
		earned[b.ID] = true
	}

	newBadges := make([]Badge, 0)
	for round := 0; round < badgeRounds; round++ {
		stats, err := s.store.GetStats(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get stats: %w", err)
		}

		candidates := QualifyingBadges(catalog, earned, *stats)
		if len(candidates) == 0 {
			break
		}

		awarded, err := s.store.AwardBadges(ctx, userID, candidates, s.now())
		if err != nil {
			return nil, fmt.Errorf("award badges: %w", err)
		}
		for _, b := range candidates {
			earned[b.ID] = true
		}
		for _, b := range awarded {
			s.metricsManager.CounterBadgesAwarded.WithLabelValues(b.ID).Inc()
			log.Debugf("user %s earned badge %s", userID, b.ID)
		}
		newBadges = append(newBadges, awarded...)
		if len(awarded) == 0 {
			break
		}
	}

	return newBadges, nil
}

// SyncUserStatsFromActivity rebuilds the stats row from the activity tables.
func (s *Service) SyncUserStatsFromActivity(ctx context.Context, userID uuid.UUID) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.stats.sync")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	defer func(begin time.Time) {
		s.metricsManager.HistStatsResyncDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	var stats *UserStats
	for attempt := 1; attempt <= resyncAttempts; attempt++ {
		stats, err = s.store.Resync(ctx, userID, s.now())
		if err == nil || !pkg.IsSerializationFailure(err) {
			break
		}
		log.Debugf("resync %s: serialization conflict, attempt %d", userID, attempt)
	}
	if err != nil {
		return nil, fmt.Errorf("resync stats: %w", err)
	}

	newBadges, badgeErr := s.CheckAndAwardBadges(ctx, userID)
	if badgeErr != nil {
		log.Errorf("award badges after resync of %s: %s", userID, badgeErr)
		return stats, nil
	}
	for _, b := range newBadges {
		stats.TotalPoints += int64(b.Points)
	}

	return stats, nil
}

// GetStats returns the stored stats with the streak as seen today.
func (s *Service) GetStats(ctx context.Context, userID uuid.UUID) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.stats.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	stats, err := s.store.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	stats.CurrentStreak = EffectiveCurrentStreak(*stats, s.now(), s.loc)
	return stats, nil
}

func (s *Service) ListBadges(ctx context.Context, userID uuid.UUID) (_ []BadgeStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.badges.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	catalog, err := s.store.BadgeCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("badge catalog: %w", err)
	}
	earnedBadges, err := s.store.EarnedBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("earned badges: %w", err)
	}
	earnedAt := make(map[string]time.Time, len(earnedBadges))
	for _, b := range earnedBadges {
		earnedAt[b.ID] = b.EarnedAt
	}

	statuses := make([]BadgeStatus, 0, len(catalog))
	for _, b := range catalog {
		status := BadgeStatus{Badge: b}
		if at, ok := earnedAt[b.ID]; ok {
			status.Earned = true
			status.EarnedAt = &at
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// LogSteps stores the step count for a day (replacing any earlier figure) and
// resyncs the stats, since step points are derived from the total.
func (s *Service) LogSteps(ctx context.Context, userID uuid.UUID, day time.Time, steps int) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gamification.steps.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if steps < 0 {
		return nil, fmt.Errorf("negative steps: %d", steps)
	}
	if err := s.store.UpsertSteps(ctx, userID, pkg.Day(day, s.loc), steps); err != nil {
		return nil, fmt.Errorf("upsert steps: %w", err)
	}
	return s.SyncUserStatsFromActivity(ctx, userID)
}

// Today is the current day in the stats timezone.
func (s *Service) Today() time.Time {
	return pkg.Day(s.now(), s.loc)
}
