package components

import (
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/refno"
	"hotel-core/internal/usecase"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(hotel config.HotelConfig) clock.Clock {
		return clock.NewRealClock(hotel.Location())
	},
	fx.Annotate(
		func(hotel config.HotelConfig) (*refno.Generator, error) {
			return refno.NewGenerator(hotel.NodeID)
		},
		fx.As(new(commands.NumberGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewPricingRuleCommands,
		commands.NewPolicyCommands,
		commands.NewHousekeepingCommands,
		commands.NewRoomCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewPricingQueries,
		queries.NewPolicyQueries,
		queries.NewHousekeepingQueries,
		queries.NewRoomQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
