package gamification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/db"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const ledgerSourceWorkout = "workout"

const statsColumns = `
	user_id, total_workouts, total_calories_burned, total_exercises_completed, total_steps,
	current_streak, longest_streak, last_workout_date, total_points, points_updated_at, updated_at`

type Repo struct {
	db  *pgxpool.Pool
	loc *time.Location
}

func NewRepo(db *pgxpool.Pool, loc *time.Location) *Repo {
	return &Repo{
		db:  db,
		loc: loc,
	}
}

func (r *Repo) StartSession(ctx context.Context, userID uuid.UUID, ns NewSession, startedAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.session.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session := &Session{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       ns.Title,
		Category:    ns.Category,
		Description: ns.Description,
		Status:      SessionInProgress,
		StartedAt:   startedAt,
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_sessions (id, user_id, title, category, description, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		session.ID, session.UserID, session.Title, session.Category,
		session.Description, session.Status, session.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

// CompleteSession marks the session completed, writes the ledger row and
// folds the workout into user_stats, all in one transaction. The stats row
// is locked, so concurrent completions for one user serialize.
func (r *Repo) CompleteSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	c WorkoutCompletion,
	points int,
	completedAt time.Time,
) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.session.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	result := &CompletionResult{SessionID: sessionID}
	err = db.InTx(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var owner uuid.UUID
		var status SessionStatus
		err := tx.QueryRow(ctx, `
			SELECT user_id, status FROM workout_sessions WHERE id = $1 FOR UPDATE
		`, sessionID).Scan(&owner, &status)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && owner != userID) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}

		duplicate := status == SessionCompleted
		if !duplicate {
			var ledgerID int64
			err = tx.QueryRow(ctx, `
				INSERT INTO points_ledger (user_id, source, source_id, points, created_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (source, source_id) DO NOTHING
				RETURNING id
			`, userID, ledgerSourceWorkout, sessionID.String(), points, completedAt).Scan(&ledgerID)
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				duplicate = true
			case err != nil:
				return fmt.Errorf("insert ledger row: %w", err)
			}
		}

		if duplicate {
			result.Duplicate = true
			err = tx.QueryRow(ctx, `
				SELECT COALESCE(
					(SELECT points FROM points_ledger WHERE source = $1 AND source_id = $2), 0
				)
			`, ledgerSourceWorkout, sessionID.String()).Scan(&result.PointsAwarded)
			if err != nil {
				return fmt.Errorf("read original award: %w", err)
			}
			stats, err := r.readStats(ctx, tx, userID, false)
			if err != nil {
				return err
			}
			result.Stats = *stats
			return nil
		}

		_, err = tx.Exec(ctx, `
			UPDATE workout_sessions
			SET status = $2, completed_at = $3, duration_minutes = $4, calories_burned = $5,
				sets_completed = $6, total_volume_kg = $7, exercises_completed = $8, difficulty_rating = $9
			WHERE id = $1
		`,
			sessionID, SessionCompleted, completedAt, c.DurationMinutes, c.CaloriesBurned,
			c.SetsCompleted, c.TotalVolumeKg, c.ExercisesCompleted, c.DifficultyRating,
		)
		if err != nil {
			return fmt.Errorf("complete session: %w", err)
		}

		stats, err := r.readStats(ctx, tx, userID, true)
		if err != nil {
			return err
		}
		updated := ApplyCompletion(*stats, c, points, completedAt, r.loc)
		if err := r.writeStats(ctx, tx, updated); err != nil {
			return err
		}

		result.PointsAwarded = points
		result.Stats = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Bool("duplicate", result.Duplicate))
	return result, nil
}

func (r *Repo) GetStats(ctx context.Context, userID uuid.UUID) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.stats.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.readStats(ctx, r.db, userID, false)
}

// Resync recomputes the stats row from the activity tables. The reads share
// one REPEATABLE READ snapshot; a concurrent completion touching the same row
// makes the final upsert fail with a serialization error.
func (r *Repo) Resync(ctx context.Context, userID uuid.UUID, now time.Time) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.stats.resync")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var stats UserStats
	err = db.InTx(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.RepeatableRead}, func(tx pgx.Tx) error {
		var snap ActivitySnapshot
		var workouts, exercises int64

		err := tx.QueryRow(ctx, `
			SELECT count(*), COALESCE(sum(calories_burned), 0), COALESCE(sum(exercises_completed), 0)
			FROM workout_sessions
			WHERE user_id = $1 AND status = 'completed'
		`, userID).Scan(&workouts, &snap.TotalCaloriesBurned, &exercises)
		if err != nil {
			return fmt.Errorf("sum workouts: %w", err)
		}
		snap.CompletedWorkouts = int(workouts)
		snap.TotalExercisesCompleted = int(exercises)

		rows, err := tx.Query(ctx, `
			SELECT completed_at FROM workout_sessions
			WHERE user_id = $1 AND status = 'completed' AND completed_at IS NOT NULL
		`, userID)
		if err != nil {
			return fmt.Errorf("query workout times: %w", err)
		}
		snap.WorkoutTimes, err = pgx.CollectRows(rows, pgx.RowTo[time.Time])
		if err != nil {
			return fmt.Errorf("collect workout times: %w", err)
		}

		err = tx.QueryRow(ctx, `
			SELECT COALESCE(sum(steps), 0), max(day)::timestamp AT TIME ZONE 'UTC' FROM daily_steps WHERE user_id = $1
		`, userID).Scan(&snap.TotalSteps, &snap.LastStepsDay)
		if err != nil {
			return fmt.Errorf("sum steps: %w", err)
		}

		err = tx.QueryRow(ctx, `
			SELECT COALESCE(sum(points), 0), max(created_at) FROM points_ledger WHERE user_id = $1
		`, userID).Scan(&snap.LedgerPoints, &snap.LastPointsAt)
		if err != nil {
			return fmt.Errorf("sum ledger: %w", err)
		}

		err = tx.QueryRow(ctx, `
			SELECT COALESCE(sum(b.points), 0), max(ub.earned_at)
			FROM user_badges ub
			JOIN badges b ON b.id = ub.badge_id
			WHERE ub.user_id = $1
		`, userID).Scan(&snap.BadgePoints, &snap.LastBadgeAt)
		if err != nil {
			return fmt.Errorf("sum badge points: %w", err)
		}

		stats = StatsFromSnapshot(userID, snap, now, r.loc)
		return r.upsertStats(ctx, tx, stats)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *Repo) BadgeCatalog(ctx context.Context) (_ []Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.badges.catalog")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, requirement_type, requirement_value, points
		FROM badges
		ORDER BY requirement_type, requirement_value
	`)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}
	defer rows.Close()

	badges := make([]Badge, 0)
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.RequirementType, &b.RequirementValue, &b.Points); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return badges, nil
}

func (r *Repo) EarnedBadges(ctx context.Context, userID uuid.UUID) (_ []UserBadge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.badges.earned")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.name, b.description, b.requirement_type, b.requirement_value, b.points, ub.earned_at
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
		ORDER BY ub.earned_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user badges: %w", err)
	}
	defer rows.Close()

	badges := make([]UserBadge, 0)
	for rows.Next() {
		var ub UserBadge
		if err := rows.Scan(
			&ub.ID, &ub.Name, &ub.Description, &ub.RequirementType, &ub.RequirementValue, &ub.Points, &ub.EarnedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user badge: %w", err)
		}
		badges = append(badges, ub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return badges, nil
}

// AwardBadges inserts the given badges at most once each and credits the
// points of the newly inserted ones. It returns only the new ones.
func (r *Repo) AwardBadges(ctx context.Context, userID uuid.UUID, badges []Badge, at time.Time) (_ []Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.badges.award")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var awarded []Badge
	err = db.InTx(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		awarded = awarded[:0]
		bonus := 0
		for _, b := range badges {
			tag, err := tx.Exec(ctx, `
				INSERT INTO user_badges (user_id, badge_id, earned_at)
				VALUES ($1, $2, $3)
				ON CONFLICT (user_id, badge_id) DO NOTHING
			`, userID, b.ID, at)
			if err != nil {
				return fmt.Errorf("insert user badge %s: %w", b.ID, err)
			}
			if tag.RowsAffected() == 1 {
				awarded = append(awarded, b)
				bonus += b.Points
			}
		}
		if bonus == 0 {
			return nil
		}

		if err := r.ensureStatsRow(ctx, tx, userID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			UPDATE user_stats
			SET total_points = total_points + $2, points_updated_at = $3, updated_at = $3
			WHERE user_id = $1
		`, userID, bonus, at)
		if err != nil {
			return fmt.Errorf("credit badge points: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("awarded", len(awarded)))
	return awarded, nil
}

func (r *Repo) UpsertSteps(ctx context.Context, userID uuid.UUID, day time.Time, steps int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.steps.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO daily_steps (user_id, day, steps)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day) DO UPDATE SET steps = EXCLUDED.steps
	`, userID, day, steps)
	if err != nil {
		return fmt.Errorf("upsert steps: %w", err)
	}
	return nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (r *Repo) ensureStatsRow(ctx context.Context, q querier, userID uuid.UUID) error {
	_, err := q.Exec(ctx, `
		INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return fmt.Errorf("ensure stats row: %w", err)
	}
	return nil
}

// readStats returns zero stats for users without a row. With forUpdate the
// row is created if missing and locked for the rest of the transaction.
func (r *Repo) readStats(ctx context.Context, q querier, userID uuid.UUID, forUpdate bool) (*UserStats, error) {
	query := `SELECT ` + statsColumns + ` FROM user_stats WHERE user_id = $1`
	if forUpdate {
		if err := r.ensureStatsRow(ctx, q, userID); err != nil {
			return nil, err
		}
		query += ` FOR UPDATE`
	}

	var s UserStats
	err := q.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.TotalWorkouts, &s.TotalCaloriesBurned, &s.TotalExercisesCompleted, &s.TotalSteps,
		&s.CurrentStreak, &s.LongestStreak, &s.LastWorkoutDate, &s.TotalPoints, &s.PointsUpdatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &UserStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}

	// DATE columns come back as UTC midnight, move them to the stats timezone
	if s.LastWorkoutDate != nil {
		d := time.Date(s.LastWorkoutDate.Year(), s.LastWorkoutDate.Month(), s.LastWorkoutDate.Day(), 0, 0, 0, 0, r.loc)
		s.LastWorkoutDate = &d
	}
	return &s, nil
}

func (r *Repo) writeStats(ctx context.Context, q querier, s UserStats) error {
	_, err := q.Exec(ctx, `
		UPDATE user_stats
		SET total_workouts = $2, total_calories_burned = $3, total_exercises_completed = $4, total_steps = $5,
			current_streak = $6, longest_streak = $7, last_workout_date = $8, total_points = $9,
			points_updated_at = $10, updated_at = $11
		WHERE user_id = $1
	`, statsArgs(s)...)
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func (r *Repo) upsertStats(ctx context.Context, q querier, s UserStats) error {
	_, err := q.Exec(ctx, `
		INSERT INTO user_stats (`+statsColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			total_workouts = EXCLUDED.total_workouts,
			total_calories_burned = EXCLUDED.total_calories_burned,
			total_exercises_completed = EXCLUDED.total_exercises_completed,
			total_steps = EXCLUDED.total_steps,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_workout_date = EXCLUDED.last_workout_date,
			total_points = EXCLUDED.total_points,
			points_updated_at = EXCLUDED.points_updated_at,
			updated_at = EXCLUDED.updated_at
	`, statsArgs(s)...)
	if err != nil {
		return fmt.Errorf("upsert stats: %w", err)
	}
	return nil
}

func statsArgs(s UserStats) []any {
	return []any{
		s.UserID, s.TotalWorkouts, s.TotalCaloriesBurned, s.TotalExercisesCompleted, s.TotalSteps,
		s.CurrentStreak, s.LongestStreak, s.LastWorkoutDate, s.TotalPoints, s.PointsUpdatedAt, s.UpdatedAt,
	}
}
