package components

import (
	"hotel-core/internal/infra/readstore"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/infra/uow"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Room and room type
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(queries.RoomTypeReadStore)),
		),
		// Cancellation policy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PolicyReadQueries)),
		),
		fx.Annotate(
			readstore.NewPolicyReadStore,
			fx.As(new(queries.PolicyReadStore)),
		),
		// Housekeeping
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TaskReadQueries)),
		),
		fx.Annotate(
			readstore.NewTaskReadStore,
			fx.As(new(queries.TaskReadStore)),
		),
		// Pricing rules: one cached store serves reads and write-side invalidation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PricingRuleReadQueries)),
		),
		fx.Annotate(
			NewPricingRuleReadStore,
			fx.As(new(queries.PricingRuleReadStore)),
			fx.As(new(shared.RuleCacheInvalidator)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewPricingRuleReadStore(q readstore.PricingRuleReadQueries, db sqlc.DBTX, cfg config.Config) *readstore.PricingRuleReadStore {
	return readstore.NewPricingRuleReadStore(q, db, cfg.Cache.PricingRuleTTL, cfg.Cache.CleanupInterval)
}
