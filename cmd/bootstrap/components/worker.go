package components

import (
	"context"

	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewCarStatusReconciler,
	),
	fx.Invoke(registerReconciler),
)

func NewCarStatusReconciler(cars worker.CarStatusStore, cfg config.Config) *worker.CarStatusReconciler {
	return worker.NewCarStatusReconciler(cars, cfg.Engine.StatusSyncSchedule)
}

func registerReconciler(lc fx.Lifecycle, reconciler *worker.CarStatusReconciler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return reconciler.Start()
		},
		OnStop: func(_ context.Context) error {
			reconciler.Stop()
			return nil
		},
	})
}
