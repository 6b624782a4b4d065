// Package main runs the fitquest MCP server over stdio (for local agent use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"

	"github.com/2beens/fitquest/internal"
	"github.com/2beens/fitquest/internal/config"
	"github.com/2beens/fitquest/internal/db"
	fitquestmcp "github.com/2beens/fitquest/internal/mcp"
	"github.com/2beens/fitquest/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("stats location: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         os.Getenv("FITQUEST_DB_USER"),
		DBPassword:     os.Getenv("FITQUEST_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITQUEST_REDIS_PASS"),
	})
	defer rdb.Close()

	services := internal.NewServices(internal.NewServicesParams{
		DBPool:                   dbPool,
		RedisClient:              rdb,
		MetricsManager:           metrics.NewManager("fitquest", "mcp", prometheus.NewRegistry()),
		Location:                 loc,
		WeeklyBoardCacheSizeMB:   cfg.WeeklyBoardCacheSizeMB,
		DefaultMaintenanceKcal:   cfg.DefaultMaintenanceKcal,
		WeightUnlockRequiredDays: cfg.WeightUnlockRequiredDays,
	})

	server := fitquestmcp.NewServer(services.MCPContext)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
