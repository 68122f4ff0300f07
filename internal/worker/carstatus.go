// Package worker hosts the background jobs that run alongside the HTTP
// surface. Jobs are scheduled with robfig/cron and share the process
// lifecycle via Start/Stop.
package worker

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/domain/car"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// CarStatusStore is what the reconciler needs from the car registry: find
// cars whose advisory status drifted from the rentals table and repair them.
type CarStatusStore interface {
	FindStatusDrift(ctx context.Context) (map[uuid.UUID]car.Status, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status car.Status) error
}

// CarStatusReconciler periodically re-derives AVAILABLE/RENTED from active
// rentals. The advisory status write during booking is best-effort, so this
// job is what keeps the column honest over time.
type CarStatusReconciler struct {
	cars     CarStatusStore
	schedule string
	cron     *cron.Cron
}

func NewCarStatusReconciler(cars CarStatusStore, schedule string) *CarStatusReconciler {
	return &CarStatusReconciler{
		cars:     cars,
		schedule: schedule,
		cron:     cron.New(),
	}
}

func (r *CarStatusReconciler) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.runOnce); err != nil {
		return err
	}
	r.cron.Start()
	slog.Info("car status reconciler started", "schedule", r.schedule)
	return nil
}

func (r *CarStatusReconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *CarStatusReconciler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	drift, err := r.cars.FindStatusDrift(ctx)
	if err != nil {
		slog.Error("car status drift query failed", "error", err.Error())
		return
	}
	if len(drift) == 0 {
		return
	}

	repaired := 0
	for id, status := range drift {
		if err := r.cars.UpdateStatus(ctx, id, status); err != nil {
			slog.Warn("car status repair failed", "car_id", id, "error", err.Error())
			continue
		}
		repaired++
	}
	slog.Info("car status reconciled", "drifted", len(drift), "repaired", repaired)
}
