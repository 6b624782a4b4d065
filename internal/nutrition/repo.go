package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) InsertMeal(ctx context.Context, m Meal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.meal.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_meal_logs (id, user_id, meal_type, food_name, calories, protein_g, carbs_g, fats_g, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, m.ID, m.UserID, m.MealType, m.FoodName, m.Calories, m.ProteinG, m.CarbsG, m.FatsG, m.LoggedAt)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

func (r *Repo) ConsumedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.consumed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var consumed int
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(calories), 0)
		FROM user_meal_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
	`, userID, from, to).Scan(&consumed)
	if err != nil {
		return 0, fmt.Errorf("sum consumed calories: %w", err)
	}
	return consumed, nil
}

func (r *Repo) SessionsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []BurnedSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.sessions")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT category, duration_minutes, calories_burned
		FROM workout_sessions
		WHERE user_id = $1 AND status = 'completed' AND completed_at >= $2 AND completed_at < $3
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query completed sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]BurnedSession, 0)
	for rows.Next() {
		var s BurnedSession
		if err := rows.Scan(&s.Category, &s.DurationMinutes, &s.CaloriesBurned); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Goals returns the user's goals, or nil when none were set.
func (r *Repo) Goals(ctx context.Context, userID uuid.UUID) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.goals.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	g := &Goals{}
	err = r.db.QueryRow(ctx, `
		SELECT maintenance_kcal, goal_kcal FROM user_goals WHERE user_id = $1
	`, userID).Scan(&g.MaintenanceKcal, &g.GoalKcal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	return g, nil
}

func (r *Repo) UpsertGoals(ctx context.Context, userID uuid.UUID, g Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.goals.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_goals (user_id, maintenance_kcal, goal_kcal)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET maintenance_kcal = EXCLUDED.maintenance_kcal, goal_kcal = EXCLUDED.goal_kcal
	`, userID, g.MaintenanceKcal, g.GoalKcal)
	if err != nil {
		return fmt.Errorf("upsert goals: %w", err)
	}
	return nil
}

func (r *Repo) InsertWeight(ctx context.Context, userID uuid.UUID, w WeightMeasurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.weight.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO weight_progress_tracking (user_id, weight_kg, measured_at) VALUES ($1, $2, $3)
	`, userID, w.WeightKg, w.MeasuredAt)
	if err != nil {
		return fmt.Errorf("insert weight: %w", err)
	}
	return nil
}

func (r *Repo) LatestWeight(ctx context.Context, userID uuid.UUID) (_ *WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.weight.latest")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w := &WeightMeasurement{}
	err = r.db.QueryRow(ctx, `
		SELECT weight_kg, measured_at
		FROM weight_progress_tracking
		WHERE user_id = $1
		ORDER BY measured_at DESC
		LIMIT 1
	`, userID).Scan(&w.WeightKg, &w.MeasuredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoWeightMeasurement
	}
	if err != nil {
		return nil, fmt.Errorf("query latest weight: %w", err)
	}
	return w, nil
}

func (r *Repo) WeightHistory(ctx context.Context, userID uuid.UUID, limit int) (_ []WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.weight.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT weight_kg, measured_at
		FROM weight_progress_tracking
		WHERE user_id = $1
		ORDER BY measured_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query weight history: %w", err)
	}
	defer rows.Close()

	history := make([]WeightMeasurement, 0)
	for rows.Next() {
		var w WeightMeasurement
		if err := rows.Scan(&w.WeightKg, &w.MeasuredAt); err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		history = append(history, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// MealLogDays counts the distinct calendar days, in tz, with at least one meal log.
func (r *Repo) MealLogDays(ctx context.Context, userID uuid.UUID, tz string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.meal.days")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var days int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT (logged_at AT TIME ZONE $2)::date)
		FROM user_meal_logs
		WHERE user_id = $1
	`, userID, tz).Scan(&days)
	if err != nil {
		return 0, fmt.Errorf("count meal log days: %w", err)
	}
	return days, nil
}
