package bootstrap

import (
	"context"
	"log/slog"

	"hotel-core/internal/infra/db"
	"hotel-core/internal/infra/seed"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// SeedModule loads reference data once the schema is in place.
var SeedModule = fx.Module("seed",
	fx.Invoke(RunSeed),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RunSeed(lc fx.Lifecycle, pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, logger *slog.Logger) error {
	data, err := seed.Default()
	if err != nil {
		return err
	}
	seeder := seed.NewSeeder(pool, q, cfg.Seed, data)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := seeder.Run(ctx); err != nil {
				return err
			}
			logger.Info("seed data ensured")
			return nil
		},
	})
	return nil
}
