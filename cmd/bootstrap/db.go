package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"coshare-scheduler/internal/infra/db"
	"coshare-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// the exclusion constraint is the last line of defence for the no-double-booking invariant
const overlapConstraint = "reservations_no_blocking_overlap"

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return checkSchema(ctx, pool)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var present bool
	err := pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = $1)", overlapConstraint).Scan(&present)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if !present {
		return fmt.Errorf("constraint %s is missing; apply migrations before starting", overlapConstraint)
	}
	slog.Debug("schema check passed", "constraint", overlapConstraint)
	return nil
}
