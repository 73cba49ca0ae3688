package bootstrap

import (
	"context"
	"log/slog"

	"coshare-scheduler/internal/infra/notify"
	"coshare-scheduler/internal/pkg/config"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewDeliverer,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled; notifications are written to the log")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "failed to reach redis at %s", cfg.Redis.Addr)
			}
			slog.Info("redis connected", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewDeliverer(cfg config.Config, client *redis.Client, logger *slog.Logger) shared.Deliverer {
	if client == nil {
		return notify.NewLogDeliverer(logger)
	}
	return notify.NewRedisDeliverer(client, cfg.Redis.DedupeTTL)
}
