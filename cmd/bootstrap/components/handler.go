package components

import (
	"hotel-booking-engine/internal/handler"
	"hotel-booking-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewPricingHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewOfferHandler,
		api.NewResolverHandler,
	),
	fx.Invoke(handler.NewRouter),
)
