package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/2beens/fitquest/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	IntegrationEnvVar = "FITQUEST_INTEGRATION"
	testDBName        = "fitquest_test"
)

// IntegrationEnabled reports whether the docker backed tests should run.
func IntegrationEnabled() bool {
	return os.Getenv(IntegrationEnvVar) == "1"
}

// Postgres is a throwaway postgres container with the fitquest schema applied.
type Postgres struct {
	Pool       *pgxpool.Pool
	Port       string
	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func StartPostgres(ctx context.Context) (_ *Postgres, err error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("new dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping dockertest pool: %w", err)
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}

	pg := &Postgres{
		Port:       resource.GetPort("5432/tcp"),
		dockerPool: dockerPool,
		resource:   resource,
	}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	dsn := fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		pg.Port, testDBName,
	)
	if err := dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	pg.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pg.Port,
		DBName: testDBName,
	})
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, pg.Pool); err != nil {
		return nil, err
	}

	return pg, nil
}

// Reset empties every table except the seeded badge catalog.
func (p *Postgres) Reset(ctx context.Context) error {
	rows, err := p.Pool.Query(ctx, `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'badges'
	`)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(tables) == 0 {
		return nil
	}

	_, err = p.Pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if p.resource != nil {
		if err := p.dockerPool.Purge(p.resource); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	}
}
