package components

import (
	"car-rental-api/internal/handler"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRentalHandler,
		fx.Annotate(
			func(svc *jwt.Service) *jwt.Service { return svc },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
