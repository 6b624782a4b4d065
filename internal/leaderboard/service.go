package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/cache"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=leaderboard_test

const (
	refreshLockName = "weekly-leaderboard-refresh"
	refreshLockTTL  = 2 * time.Minute
	weeklyCacheTTL  = 5 * time.Minute
)

type store interface {
	Rank(ctx context.Context, userID uuid.UUID) (*UserRank, error)
	Top(ctx context.Context, limit int) ([]Entry, error)
	WeeklyTotals(ctx context.Context, from, to time.Time, limit int) ([]WeeklyTotal, error)
	ReplaceWeekly(ctx context.Context, weekStart time.Time, entries []WeeklyEntry, refreshedAt time.Time) error
	Weekly(ctx context.Context, weekStart time.Time, limit int) (*WeeklyBoard, error)
}

type locker interface {
	WithLock(ctx context.Context, name string, ttl time.Duration, fn func(ctx context.Context) error) error
}

type Service struct {
	store          store
	locker         locker
	cache          cache.Cache
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	store store,
	locker locker,
	cache cache.Cache,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	return &Service{
		store:          store,
		locker:         locker,
		cache:          cache,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *Service) Rank(ctx context.Context, userID uuid.UUID) (_ *UserRank, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard.rank")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	ur, err := s.store.Rank(ctx, userID)
	if err != nil {
		return nil, err
	}
	ur.Percentile = Percentile(ur.Rank, ur.TotalUsers)
	span.SetAttributes(attribute.Int("rank", ur.Rank), attribute.Int("total_users", ur.TotalUsers))
	return ur, nil
}

func (s *Service) Top(ctx context.Context, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard.top")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.store.Top(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].DisplayName = DisplayName(entries[i].UserID)
	}
	return entries, nil
}

// RefreshWeekly rebuilds this week's board from the points ledger. Only one
// instance refreshes at a time; the others skip.
func (s *Service) RefreshWeekly(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard.weekly.refresh")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.locker.WithLock(ctx, refreshLockName, refreshLockTTL, func(ctx context.Context) error {
		defer func(begin time.Time) {
			s.metricsManager.HistWeeklyBoardRefreshDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		now := s.now()
		weekStart := pkg.WeekStart(now, s.loc)
		totals, err := s.store.WeeklyTotals(ctx, weekStart, weekStart.AddDate(0, 0, 7), weeklyBoardSize)
		if err != nil {
			return fmt.Errorf("weekly totals: %w", err)
		}

		entries := WeeklyEntries(totals)
		if err := s.store.ReplaceWeekly(ctx, weekStart, entries, now); err != nil {
			return fmt.Errorf("replace weekly board: %w", err)
		}
		s.cache.Clear()

		log.Debugf("weekly leaderboard for %s refreshed, %d entries", weekStart.Format(time.DateOnly), len(entries))
		return nil
	})
}

// Weekly serves the materialized board of the current week. It lags the live
// ranking by up to one refresh interval.
func (s *Service) Weekly(ctx context.Context, limit int) (_ *WeeklyBoard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard.weekly.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	limit = clampLimit(limit)
	weekStart := pkg.WeekStart(s.now(), s.loc)
	key := fmt.Sprintf("weekly|%s|%d", weekStart.Format(time.DateOnly), limit)

	if cached, ok := s.cache.Get(key); ok {
		board := &WeeklyBoard{}
		if err := json.Unmarshal(cached, board); err == nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return board, nil
		}
		log.Warnf("weekly board cache entry %s is corrupt, reloading", key)
	}

	board, err := s.store.Weekly(ctx, weekStart, limit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(board); err == nil {
		if err := s.cache.Set(key, raw, weeklyCacheTTL); err != nil {
			log.Warnf("cache weekly board: %s", err)
		}
	}
	return board, nil
}
