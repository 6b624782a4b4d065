package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=activity_test

type source interface {
	CompletedWorkouts(ctx context.Context, userID uuid.UUID) ([]WorkoutRecord, error)
	MealLogs(ctx context.Context, userID uuid.UUID) ([]MealRecord, error)
}

type Aggregator struct {
	source source
	loc    *time.Location
	now    func() time.Time
}

func NewAggregator(source source, loc *time.Location) *Aggregator {
	return &Aggregator{
		source: source,
		loc:    loc,
		now:    time.Now,
	}
}

// Load fetches everything for the user and returns the merged, sorted feed.
func (a *Aggregator) Load(ctx context.Context, userID uuid.UUID) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.load")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workouts, err := a.source.CompletedWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}
	meals, err := a.source.MealLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch meals: %w", err)
	}

	workoutActivities := make([]Activity, 0, len(workouts))
	for _, w := range workouts {
		workoutActivities = append(workoutActivities, FromWorkout(w))
	}

	merged := Merge(workoutActivities, GroupMeals(meals, a.loc))
	span.SetAttributes(attribute.Int("activities", len(merged)))
	return merged, nil
}

// Feed never fails: a fetch error is logged and yields an empty feed.
func (a *Aggregator) Feed(ctx context.Context, userID uuid.UUID, filter Filter) []Activity {
	activities, err := a.Load(ctx, userID)
	if err != nil {
		log.Errorf("activity feed for %s: %s", userID, err)
		return []Activity{}
	}
	return Apply(activities, filter, a.now(), a.loc)
}
