package challenges

import (
	"context"
	"errors"
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

func (r *Repo) ActiveAt(ctx context.Context, at time.Time) (_ *Challenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.active")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	c := &Challenge{}
	err = r.db.QueryRow(ctx, `
		SELECT id, title, description, metric, target_value, starts_at, ends_at, created_at
		FROM challenges
		WHERE starts_at <= $1 AND ends_at > $1
		ORDER BY starts_at DESC
		LIMIT 1
	`, at).Scan(&c.ID, &c.Title, &c.Description, &c.Metric, &c.TargetValue, &c.StartsAt, &c.EndsAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoActiveChallenge
	}
	if err != nil {
		return nil, fmt.Errorf("query active challenge: %w", err)
	}
	return c, nil
}

// Create inserts the challenge unless one starting at the same instant
// exists already. created is false in that case.
func (r *Repo) Create(ctx context.Context, c Challenge) (_ *Challenge, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	c.ID = uuid.New()
	err = r.db.QueryRow(ctx, `
		INSERT INTO challenges (id, title, description, metric, target_value, starts_at, ends_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (starts_at) DO NOTHING
		RETURNING created_at
	`, c.ID, c.Title, c.Description, c.Metric, c.TargetValue, c.StartsAt, c.EndsAt).Scan(&c.CreatedAt)
	if err == nil {
		return &c, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("insert challenge: %w", err)
	}

	existing, err := r.ActiveAt(ctx, c.StartsAt)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repo) Join(ctx context.Context, challengeID, userID uuid.UUID, at time.Time) (_ *Participation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.join")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO challenge_participations (challenge_id, user_id, score, progress, joined_at, updated_at)
		VALUES ($1, $2, 0, 0, $3, $3)
		ON CONFLICT (challenge_id, user_id) DO NOTHING
	`, challengeID, userID, at)
	if err != nil {
		return nil, fmt.Errorf("insert participation: %w", err)
	}

	return r.Participation(ctx, challengeID, userID)
}

func (r *Repo) Participation(ctx context.Context, challengeID, userID uuid.UUID) (_ *Participation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.participation")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p := &Participation{}
	err = r.db.QueryRow(ctx, `
		SELECT challenge_id, user_id, score, progress, joined_at, updated_at
		FROM challenge_participations
		WHERE challenge_id = $1 AND user_id = $2
	`, challengeID, userID).Scan(&p.ChallengeID, &p.UserID, &p.Score, &p.Progress, &p.JoinedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotParticipating
	}
	if err != nil {
		return nil, fmt.Errorf("query participation: %w", err)
	}
	return p, nil
}

// RecordContribution adds value to the user's score, once per sourceID.
// The participation row is created on the first contribution. Returns false
// for a replayed sourceID.
func (r *Repo) RecordContribution(
	ctx context.Context,
	c *Challenge,
	userID uuid.UUID,
	sourceID string,
	value float64,
	at time.Time,
) (recorded bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.contribution")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("challenge.id", c.ID.String()),
		attribute.String("source.id", sourceID),
	)

	err = db.InTx(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO challenge_contributions (challenge_id, user_id, source_id, value, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (challenge_id, source_id) DO NOTHING
		`, c.ID, userID, sourceID, value, at)
		if err != nil {
			return fmt.Errorf("insert contribution: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		recorded = true

		// score is incremented in place, never read-modify-written
		_, err = tx.Exec(ctx, `
			INSERT INTO challenge_participations (challenge_id, user_id, score, progress, joined_at, updated_at)
			VALUES ($1, $2, $3, LEAST(100, $3::float8 * 100 / $4::float8), $5, $5)
			ON CONFLICT (challenge_id, user_id) DO UPDATE SET
				score = challenge_participations.score + EXCLUDED.score,
				progress = LEAST(100, (challenge_participations.score + EXCLUDED.score) * 100 / $4::float8),
				updated_at = EXCLUDED.updated_at
		`, c.ID, userID, value, c.TargetValue, at)
		if err != nil {
			return fmt.Errorf("upsert participation: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return recorded, nil
}

func (r *Repo) Standings(ctx context.Context, challengeID uuid.UUID, limit int) (_ []Standing, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.standings")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT RANK() OVER (ORDER BY score DESC), user_id, score, progress
		FROM challenge_participations
		WHERE challenge_id = $1
		ORDER BY score DESC, updated_at ASC, user_id
		LIMIT $2
	`, challengeID, limit)
	if err != nil {
		return nil, fmt.Errorf("query standings: %w", err)
	}
	defer rows.Close()

	standings := make([]Standing, 0)
	for rows.Next() {
		var s Standing
		if err := rows.Scan(&s.Rank, &s.UserID, &s.Score, &s.Progress); err != nil {
			return nil, fmt.Errorf("scan standing: %w", err)
		}
		standings = append(standings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return standings, nil
}
