package components

import (
	"fleetops/internal/handler"
	"fleetops/internal/handler/api"
	"fleetops/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewExtensionHandler,
		api.NewTaskHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
