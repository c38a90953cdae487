package components

import (
	"booking-registry/internal/handler"
	"booking-registry/internal/handler/api"
	"booking-registry/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRegistryHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, b *api.BookingHandler, r *api.RegistryHandler, l *api.LedgerHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Booking: b, Registry: r, Ledger: l}
		},
	),
	fx.Invoke(handler.NewRouter),
)
