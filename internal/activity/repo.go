package activity

import (
	"context"
	"fmt"

	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/google/uuid"
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

func (r *Repo) CompletedWorkouts(ctx context.Context, userID uuid.UUID) (_ []WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.workouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, title, category, description, completed_at,
			duration_minutes, calories_burned, sets_completed, total_volume_kg, exercises_completed
		FROM workout_sessions
		WHERE user_id = $1 AND status = 'completed' AND completed_at IS NOT NULL
		ORDER BY completed_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]WorkoutRecord, 0)
	for rows.Next() {
		var w WorkoutRecord
		if err := rows.Scan(
			&w.ID, &w.Title, &w.Category, &w.Description, &w.CompletedAt,
			&w.DurationMinutes, &w.CaloriesBurned, &w.SetsCompleted, &w.TotalVolumeKg, &w.ExercisesCompleted,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *Repo) MealLogs(ctx context.Context, userID uuid.UUID) (_ []MealRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.meals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, meal_type, food_name, calories, protein_g, carbs_g, fats_g, logged_at
		FROM user_meal_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	defer rows.Close()

	meals := make([]MealRecord, 0)
	for rows.Next() {
		var m MealRecord
		if err := rows.Scan(
			&m.ID, &m.MealType, &m.FoodName, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatsG, &m.LoggedAt,
		); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
