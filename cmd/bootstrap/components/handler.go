package components

import (
	"hotel-core/internal/handler"
	"hotel-core/internal/handler/api"
	"hotel-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewPricingHandler,
		api.NewPolicyHandler,
		api.NewHousekeepingHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
	Pricing      *api.PricingHandler
	Policy       *api.PolicyHandler
	Housekeeping *api.HousekeepingHandler
	Room         *api.RoomHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Booking:      p.Booking,
		Payment:      p.Payment,
		Pricing:      p.Pricing,
		Policy:       p.Policy,
		Housekeeping: p.Housekeeping,
		Room:         p.Room,
	}
}
