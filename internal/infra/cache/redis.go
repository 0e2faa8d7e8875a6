// Package cache provides the Redis-backed snapshot store for lives state.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"hearts/config"
	"hearts/internal/domain/lifecycle"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RedisParams holds dependencies for the Redis client, injected by Fx.
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the shared Redis connection and binds its lifetime
// to the Fx lifecycle.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	cfg := params.Cfg.Redis
	if cfg == nil {
		return nil, errors.New("redis configuration is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing redis connection")

			return client.Close()
		},
	})

	return client, nil
}
