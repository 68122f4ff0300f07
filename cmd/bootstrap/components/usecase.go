package components

import (
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewRentalQueries,
		usecase.NewRentalUseCase,
		usecase.NewAuthUseCase,
	),
)
