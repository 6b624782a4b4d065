package internal

import (
	"time"

	"github.com/2beens/fitquest/internal/activity"
	"github.com/2beens/fitquest/internal/cache"
	"github.com/2beens/fitquest/internal/challenges"
	"github.com/2beens/fitquest/internal/gamification"
	"github.com/2beens/fitquest/internal/leaderboard"
	"github.com/2beens/fitquest/internal/lock"
	fitquestmcp "github.com/2beens/fitquest/internal/mcp"
	"github.com/2beens/fitquest/internal/nutrition"
	"github.com/2beens/fitquest/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Services holds every domain service, built once over the shared db pool and
// redis client. The HTTP server, the admin CLI and the stdio MCP binary all
// start from here.
type Services struct {
	Activity     *activity.Aggregator
	Gamification *gamification.Service
	Challenges   *challenges.Service
	Leaderboard  *leaderboard.Service
	Nutrition    *nutrition.Service
	MCPContext   *fitquestmcp.ContextService
}

type NewServicesParams struct {
	DBPool                   *pgxpool.Pool
	RedisClient              redis.Cmdable
	MetricsManager           *metrics.Manager
	Location                 *time.Location
	WeeklyBoardCacheSizeMB   int
	DefaultMaintenanceKcal   int
	WeightUnlockRequiredDays int
}

func NewServices(params NewServicesParams) *Services {
	locker := lock.NewRedisLocker(params.RedisClient)

	challengesService := challenges.NewService(
		challenges.NewRepo(params.DBPool),
		locker,
		params.MetricsManager,
		params.Location,
	)
	gamificationService := gamification.NewService(
		gamification.NewRepo(params.DBPool, params.Location),
		challengesService,
		params.MetricsManager,
		params.Location,
	)
	leaderboardService := leaderboard.NewService(
		leaderboard.NewRepo(params.DBPool),
		locker,
		cache.NewFreeCache(params.WeeklyBoardCacheSizeMB),
		params.MetricsManager,
		params.Location,
	)
	nutritionService := nutrition.NewService(
		nutrition.NewRepo(params.DBPool),
		nutrition.ServiceParams{
			Location:               params.Location,
			DefaultMaintenanceKcal: params.DefaultMaintenanceKcal,
			UnlockRequiredDays:     params.WeightUnlockRequiredDays,
		},
	)
	aggregator := activity.NewAggregator(activity.NewRepo(params.DBPool), params.Location)

	return &Services{
		Activity:     aggregator,
		Gamification: gamificationService,
		Challenges:   challengesService,
		Leaderboard:  leaderboardService,
		Nutrition:    nutritionService,
		MCPContext: fitquestmcp.NewContextService(fitquestmcp.ContextServiceParams{
			Schema:     fitquestmcp.NewPoolSchemaRepo(params.DBPool),
			Stats:      gamificationService,
			Ranker:     leaderboardService,
			Feed:       aggregator,
			Challenges: challengesService,
		}),
	}
}
