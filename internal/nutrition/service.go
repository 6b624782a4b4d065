package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition_test

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 365
)

type store interface {
	InsertMeal(ctx context.Context, m Meal) error
	ConsumedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
	SessionsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]BurnedSession, error)
	Goals(ctx context.Context, userID uuid.UUID) (*Goals, error)
	UpsertGoals(ctx context.Context, userID uuid.UUID, g Goals) error
	InsertWeight(ctx context.Context, userID uuid.UUID, w WeightMeasurement) error
	LatestWeight(ctx context.Context, userID uuid.UUID) (*WeightMeasurement, error)
	WeightHistory(ctx context.Context, userID uuid.UUID, limit int) ([]WeightMeasurement, error)
	MealLogDays(ctx context.Context, userID uuid.UUID, tz string) (int, error)
}

type ServiceParams struct {
	Location               *time.Location
	DefaultMaintenanceKcal int
	UnlockRequiredDays     int
}

type Service struct {
	store              store
	loc                *time.Location
	defaultMaintenance int
	unlockDays         int
	now                func() time.Time
}

func NewService(store store, params ServiceParams) *Service {
	return &Service{
		store:              store,
		loc:                params.Location,
		defaultMaintenance: params.DefaultMaintenanceKcal,
		unlockDays:         params.UnlockRequiredDays,
		now:                time.Now,
	}
}

func (s *Service) LogMeal(ctx context.Context, userID uuid.UUID, nm NewMeal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.meal.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	loggedAt := s.now()
	if nm.LoggedAt != nil {
		if nm.LoggedAt.After(loggedAt) {
			return nil, fmt.Errorf("%w: meal logged in the future", ErrInvalidEntry)
		}
		loggedAt = *nm.LoggedAt
	}

	m := Meal{
		ID:       uuid.New(),
		UserID:   userID,
		MealType: nm.MealType,
		FoodName: nm.FoodName,
		Calories: nm.Calories,
		ProteinG: nm.ProteinG,
		CarbsG:   nm.CarbsG,
		FatsG:    nm.FatsG,
		LoggedAt: loggedAt,
	}
	if err := s.store.InsertMeal(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DailyBalance sums what the user ate and burned on day (in the stats
// timezone) against their maintenance figure.
func (s *Service) DailyBalance(ctx context.Context, userID uuid.UUID, day time.Time) (_ *DailyBalance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.balance")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	from := pkg.Day(day, s.loc)
	to := from.AddDate(0, 0, 1)

	consumed, err := s.store.ConsumedBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.SessionsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var weightKg float64
	latest, err := s.store.LatestWeight(ctx, userID)
	switch {
	case err == nil:
		weightKg = latest.WeightKg
	case errors.Is(err, ErrNoWeightMeasurement):
		log.Tracef("no weight for %s, using fallback for burn estimates", userID)
	default:
		return nil, err
	}
	burned, estimated := BurnedCalories(sessions, weightKg)

	goals, err := s.store.Goals(ctx, userID)
	if err != nil {
		return nil, err
	}
	maintenance, goal := s.defaultMaintenance, s.defaultMaintenance
	if goals != nil {
		maintenance, goal = goals.MaintenanceKcal, goals.GoalKcal
	}

	return &DailyBalance{
		Day:             from.Format(time.DateOnly),
		ConsumedKcal:    consumed,
		BurnedKcal:      burned,
		BurnEstimated:   estimated,
		MaintenanceKcal: maintenance,
		GoalKcal:        goal,
		NetKcal:         consumed - (maintenance + burned),
	}, nil
}

// Projection projects today's weight from the last actual measurement. The
// result is computed on every read and never stored.
func (s *Service) Projection(ctx context.Context, userID uuid.UUID) (_ *Projection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.projection")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	latest, err := s.store.LatestWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.DailyBalance(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}

	p := Project(ProjectionInput{
		LastWeightKg:    latest.WeightKg,
		ConsumedKcal:    balance.ConsumedKcal,
		MaintenanceKcal: balance.MaintenanceKcal,
		ExtraBurnedKcal: balance.BurnedKcal,
	})
	p.MeasuredAt = latest.MeasuredAt
	return &p, nil
}

func (s *Service) RecordWeight(ctx context.Context, userID uuid.UUID, w WeightMeasurement) (_ *WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.weight.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if w.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: weight %v", ErrInvalidEntry, w.WeightKg)
	}
	if w.MeasuredAt.IsZero() {
		w.MeasuredAt = s.now()
	}
	if err := s.store.InsertWeight(ctx, userID, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Service) WeightHistory(ctx context.Context, userID uuid.UUID, limit int) (_ []WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.weight.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.WeightHistory(ctx, userID, min(limit, MaxHistoryLimit))
}

func (s *Service) SetGoals(ctx context.Context, userID uuid.UUID, g Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.goals.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.store.UpsertGoals(ctx, userID, g)
}

// CheckWeightProgressUnlock reports whether the user logged meals on enough
// distinct days to see weight projections.
func (s *Service) CheckWeightProgressUnlock(ctx context.Context, userID uuid.UUID) (_ *UnlockStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.unlock")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	days, err := s.store.MealLogDays(ctx, userID, s.loc.String())
	if err != nil {
		return nil, err
	}
	return &UnlockStatus{
		Unlocked:     days >= s.unlockDays,
		LoggedDays:   days,
		RequiredDays: s.unlockDays,
	}, nil
}

// Today is the current day in the stats timezone.
func (s *Service) Today() time.Time {
	return pkg.Day(s.now(), s.loc)
}
