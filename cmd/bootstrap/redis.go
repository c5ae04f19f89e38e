package bootstrap

import (
	"context"
	"log/slog"

	"highway-booking/internal/handler/middleware"
	"highway-booking/internal/infra/cache"
	"highway-booking/internal/infra/idempotency"
	"highway-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewIdempotencyStore,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is unset.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.New(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Info("redis not configured, idempotency keys are ignored")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewIdempotencyStore(client *redis.Client, cfg config.Config) middleware.IdempotencyStore {
	if client == nil {
		// untyped nil so the middleware sees a nil interface
		return nil
	}
	return idempotency.NewRedisStore(client, cfg.Redis.IdempotencyTTL)
}
