// Command fitquestctl runs one-off admin operations against the fitquest
// database: stats resync, challenge rotation and weekly board refresh.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitquest/internal"
	"github.com/2beens/fitquest/internal/config"
	"github.com/2beens/fitquest/internal/db"
	"github.com/2beens/fitquest/internal/logging"
	"github.com/2beens/fitquest/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "fitquestctl",
	Short:         "fitquest admin commands",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logging.Setup(logging.LoggerSetupParams{LogLevel: level})
	},
}

func init() {
	rootCmd.PersistentFlags().String("env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().String("config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	rootCmd.AddCommand(resyncCmd)
	rootCmd.AddCommand(rotateChallengeCmd)
	rootCmd.AddCommand(refreshLeaderboardCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withServices builds the services over fresh db and redis connections, runs
// fn and closes everything again.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, services *internal.Services) error) error {
	env, _ := cmd.Flags().GetString("env")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("stats location: %w", err)
	}

	ctx := cmd.Context()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITQUEST_DB_USER"),
		DBPassword: os.Getenv("FITQUEST_DB_PASS"),
	})
	if err != nil {
		return fmt.Errorf("db pool: %w", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITQUEST_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warnf("close redis client: %s", err)
		}
	}()

	services := internal.NewServices(internal.NewServicesParams{
		DBPool:                   dbPool,
		RedisClient:              rdb,
		MetricsManager:           metrics.NewManager("fitquest", "ctl", prometheus.NewRegistry()),
		Location:                 loc,
		WeeklyBoardCacheSizeMB:   1,
		DefaultMaintenanceKcal:   cfg.DefaultMaintenanceKcal,
		WeightUnlockRequiredDays: cfg.WeightUnlockRequiredDays,
	})

	return fn(ctx, services)
}
