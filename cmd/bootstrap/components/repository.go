package components

import (
	repo_impl "car-rental-api/internal/infra/repository"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/worker"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewRentalRepository,
			fx.As(new(usecase.RentalStore)),
			fx.As(new(queries.RentalViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewCarRepository,
			fx.As(new(usecase.CarRegistry)),
			fx.As(new(worker.CarStatusStore)),
		),
		fx.Annotate(
			repo_impl.NewClientRepository,
			fx.As(new(usecase.ClientRegistry)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRegistry)),
			fx.As(new(usecase.UserIdentityStore)),
		),
	),
)
