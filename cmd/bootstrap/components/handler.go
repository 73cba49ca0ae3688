package components

import (
	"coshare-scheduler/internal/handler"
	"coshare-scheduler/internal/handler/api"
	"coshare-scheduler/internal/handler/middleware"
	"coshare-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		usecase.NewTokenValidator,
		middleware.NewAuthMiddleware,
	),
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewConflictHandler,
		api.NewInternalHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
