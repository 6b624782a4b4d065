package testinternals

import (
	"context"
	"fmt"
	"net"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// Redis is a throwaway redis container.
type Redis struct {
	Client     *redis.Client
	Port       string
	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func StartRedis(ctx context.Context) (_ *Redis, err error) {
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("new dockertest pool: %w", err)
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}

	r := &Redis{
		Port:       resource.GetPort("6379/tcp"),
		dockerPool: dockerPool,
		resource:   resource,
	}
	defer func() {
		if err != nil {
			r.Close()
		}
	}()

	r.Client = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", r.Port),
		DB:   0, // use default DB
	})
	if err := dockerPool.Retry(func() error {
		return r.Client.Ping(ctx).Err()
	}); err != nil {
		return nil, fmt.Errorf("wait for redis: %w", err)
	}

	return r, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		_ = r.Client.Close()
	}
	if r.resource != nil {
		if err := r.dockerPool.Purge(r.resource); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	}
}
