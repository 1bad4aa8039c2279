package components

import (
	"github.com/cagegit/hotel-front-desk-agent/internal/handler"
	"github.com/cagegit/hotel-front-desk-agent/internal/handler/api"
	"github.com/cagegit/hotel-front-desk-agent/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckInHandler,
		api.NewCheckOutHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
