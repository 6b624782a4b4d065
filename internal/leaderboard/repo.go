package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/db"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Rank reads the user's points, the count of users ahead and the total user
// count in one statement, hence from one snapshot. A user without a stats
// row has 0 points and is counted in the total.
func (r *Repo) Rank(ctx context.Context, userID uuid.UUID) (_ *UserRank, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.leaderboard.rank")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	ur := &UserRank{UserID: userID}
	err = r.db.QueryRow(ctx, `
		WITH me AS (
			SELECT COALESCE((SELECT total_points FROM user_stats WHERE user_id = $1), 0) AS points,
			       EXISTS (SELECT 1 FROM user_stats WHERE user_id = $1) AS has_row
		)
		SELECT me.points,
		       1 + (SELECT count(*) FROM user_stats s WHERE s.total_points > me.points),
		       (SELECT count(*) FROM user_stats) + CASE WHEN me.has_row THEN 0 ELSE 1 END
		FROM me
	`, userID).Scan(&ur.TotalPoints, &ur.Rank, &ur.TotalUsers)
	if err != nil {
		return nil, fmt.Errorf("query rank: %w", err)
	}
	return ur, nil
}

func (r *Repo) Top(ctx context.Context, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.leaderboard.top")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT RANK() OVER (ORDER BY total_points DESC), user_id, total_points, current_streak
		FROM user_stats
		ORDER BY total_points DESC, current_streak DESC, points_updated_at ASC, user_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Rank, &e.UserID, &e.TotalPoints, &e.CurrentStreak); err != nil {
			return nil, fmt.Errorf("scan top entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// WeeklyTotals sums ledger points per user in [from, to).
func (r *Repo) WeeklyTotals(ctx context.Context, from, to time.Time, limit int) (_ []WeeklyTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.leaderboard.weekly.totals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, SUM(points)::bigint, COUNT(*) FILTER (WHERE source = 'workout')
		FROM points_ledger
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY user_id
		ORDER BY SUM(points) DESC, MIN(created_at) ASC, user_id
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("query weekly totals: %w", err)
	}
	defer rows.Close()

	totals := make([]WeeklyTotal, 0)
	for rows.Next() {
		var t WeeklyTotal
		if err := rows.Scan(&t.UserID, &t.Points, &t.Workouts); err != nil {
			return nil, fmt.Errorf("scan weekly total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

// ReplaceWeekly swaps the stored board of a week in one transaction, so
// readers see either the old or the new board.
func (r *Repo) ReplaceWeekly(ctx context.Context, weekStart time.Time, entries []WeeklyEntry, refreshedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.leaderboard.weekly.replace")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("entries", len(entries)))

	return db.InTx(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM weekly_leaderboard WHERE week_start = $1`, weekStart); err != nil {
			return fmt.Errorf("clear weekly board: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []any{weekStart, e.Position, e.DisplayName, e.Points, e.Workouts, refreshedAt})
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"weekly_leaderboard"},
			[]string{"week_start", "position", "display_name", "points", "workouts", "refreshed_at"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("copy weekly board: %w", err)
		}
		return nil
	})
}

func (r *Repo) Weekly(ctx context.Context, weekStart time.Time, limit int) (_ *WeeklyBoard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.leaderboard.weekly.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT position, display_name, points, workouts, refreshed_at
		FROM weekly_leaderboard
		WHERE week_start = $1
		ORDER BY position
		LIMIT $2
	`, weekStart, limit)
	if err != nil {
		return nil, fmt.Errorf("query weekly board: %w", err)
	}
	defer rows.Close()

	board := &WeeklyBoard{WeekStart: weekStart, Entries: make([]WeeklyEntry, 0)}
	for rows.Next() {
		var e WeeklyEntry
		var refreshedAt time.Time
		if err := rows.Scan(&e.Position, &e.DisplayName, &e.Points, &e.Workouts, &refreshedAt); err != nil {
			return nil, fmt.Errorf("scan weekly entry: %w", err)
		}
		board.RefreshedAt = &refreshedAt
		board.Entries = append(board.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return board, nil
}
