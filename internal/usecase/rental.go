package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/queue"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/metrics"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// RentalStore is the write-side port for rentals.
type RentalStore interface {
	Create(ctx context.Context, ren *rental.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	UpdateEnd(ctx context.Context, id uuid.UUID, newEnd time.Time) error
	Complete(ctx context.Context, ren *rental.Rental) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOverlapping(ctx context.Context, carID uuid.UUID, start, end time.Time) ([]*rental.Rental, error)
}

// CarRegistry exposes the car side the engine depends on: existence, the
// hourly rate for settlement and the advisory status write.
type CarRegistry interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CarSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status car.Status) error
}

type ClientRegistry interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserRegistry interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// AvailabilityReadCache memoizes standalone availability answers. Nil-safe
// implementations may drop everything.
type AvailabilityReadCache interface {
	Get(ctx context.Context, carID uuid.UUID, start, end time.Time) (available bool, ok bool)
	Set(ctx context.Context, carID uuid.UUID, start, end time.Time, available bool)
	Invalidate(ctx context.Context, carID uuid.UUID)
}

// EventPublisher emits lifecycle events; failures must not fail the request.
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, event queue.RentalEvent) error
}

// ConflictError reports the first booking that blocks a requested period.
// It is always marked with errs.ErrCarUnavailable.
type ConflictError struct {
	RentalID uuid.UUID
	StartAt  time.Time
	EndAt    time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("car already booked from %s to %s",
		e.StartAt.Format(time.RFC3339), e.EndAt.Format(time.RFC3339))
}

type CreateRentalParams struct {
	CarID    uuid.UUID
	ClientID uuid.UUID
	IssuerID *uuid.UUID
	StartAt  time.Time
	EndAt    time.Time
	Notes    string
}

type RentalUseCase interface {
	CreateRental(ctx context.Context, params CreateRentalParams) (*queries.RentalView, error)
	ExtendRental(ctx context.Context, id uuid.UUID, newEnd time.Time) (*queries.RentalView, error)
	CompleteRental(ctx context.Context, id uuid.UUID, actualReturn time.Time) (*queries.RentalView, error)
	CancelRental(ctx context.Context, id uuid.UUID) (*queries.RentalView, error)
	DeleteRental(ctx context.Context, id uuid.UUID) (bool, error)
	IsCarAvailable(ctx context.Context, carID uuid.UUID, start, end time.Time) (bool, error)
}

// carLocks serializes booking mutations per car in this process. The
// database exclusion constraint stays authoritative; the lock just keeps the
// check-then-insert window closed for local contenders. Entries are never
// evicted, so the map grows with the number of distinct cars ever booked.
type carLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (c *carLocks) acquire(carID uuid.UUID) func() {
	c.mu.Lock()
	if c.locks == nil {
		c.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	lock, ok := c.locks[carID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[carID] = lock
	}
	c.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

type rentalUseCaseImpl struct {
	rentals      RentalStore
	cars         CarRegistry
	clients      ClientRegistry
	users        UserRegistry
	views        queries.RentalQueries
	availability AvailabilityReadCache
	events       EventPublisher
	clk          clock.Clock
	cfg          config.EngineConfig
	locks        carLocks
}

func NewRentalUseCase(
	rentals RentalStore,
	cars CarRegistry,
	clients ClientRegistry,
	users UserRegistry,
	views queries.RentalQueries,
	availability AvailabilityReadCache,
	events EventPublisher,
	clk clock.Clock,
	cfg config.EngineConfig,
) RentalUseCase {
	return &rentalUseCaseImpl{
		rentals:      rentals,
		cars:         cars,
		clients:      clients,
		users:        users,
		views:        views,
		availability: availability,
		events:       events,
		clk:          clk,
		cfg:          cfg,
	}
}

// CreateRental books a car. Preconditions run in a fixed order so callers see
// a deterministic first failure: client, car, issuer, period, availability.
func (u *rentalUseCaseImpl) CreateRental(ctx context.Context, params CreateRentalParams) (*queries.RentalView, error) {
	view, err := u.createRental(ctx, params)
	metrics.ObserveOperation("create", err)
	return view, err
}

func (u *rentalUseCaseImpl) createRental(ctx context.Context, params CreateRentalParams) (*queries.RentalView, error) {
	clientExists, err := u.clients.Exists(ctx, params.ClientID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !clientExists {
		return nil, errs.ErrClientNotFound
	}

	carExists, err := u.cars.Exists(ctx, params.CarID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !carExists {
		return nil, errs.ErrCarNotFound
	}

	if params.IssuerID != nil {
		issuerExists, err := u.users.Exists(ctx, *params.IssuerID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !issuerExists {
			return nil, errs.ErrIssuerNotFound
		}
	}

	period, err := rental.NewPeriod(params.StartAt, params.EndAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}
	notes, err := rental.NewNotes(params.Notes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	unlock := u.locks.acquire(params.CarID)
	defer unlock()

	if err := u.ensureAvailable(ctx, params.CarID, period); err != nil {
		return nil, err
	}

	ren := rental.NewRental(params.CarID, params.ClientID, params.IssuerID, period, notes, u.clk.Now())
	if err := u.rentals.Create(ctx, ren); err != nil {
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// The exclusion constraint caught a booking that slipped past the
		// in-process check (another instance, most likely). Re-validate so
		// the caller gets the conflicting interval rather than a bare 500.
		metrics.RentalConflicts.Inc()
		if availErr := u.ensureAvailable(ctx, params.CarID, period); availErr != nil {
			return nil, availErr
		}
		return nil, errs.Mark(err, errs.ErrConstraintViolation)
	}

	if ren.Status() == rental.StatusActive {
		u.markCarStatus(ctx, params.CarID, car.StatusRented)
	}
	u.availability.Invalidate(ctx, params.CarID)
	u.publishEvent(ctx, queue.QueueRentalCreated, ren)

	return u.views.GetByID(ctx, ren.ID())
}

// ExtendRental pushes the end of a booking forward. A new end at or before
// the current end is a silent no-op returning the unchanged rental.
func (u *rentalUseCaseImpl) ExtendRental(ctx context.Context, id uuid.UUID, newEnd time.Time) (*queries.RentalView, error) {
	view, err := u.extendRental(ctx, id, newEnd)
	metrics.ObserveOperation("extend", err)
	return view, err
}

func (u *rentalUseCaseImpl) extendRental(ctx context.Context, id uuid.UUID, newEnd time.Time) (*queries.RentalView, error) {
	ren, err := u.findRental(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := u.locks.acquire(ren.CarID())
	defer unlock()

	currentEnd := ren.Period().End()
	if !ren.Extend(newEnd) {
		return u.views.GetByID(ctx, id)
	}

	if u.cfg.RevalidateOnExtend {
		if err := u.ensureAvailableExcluding(ctx, ren.CarID(), currentEnd, newEnd, id); err != nil {
			return nil, err
		}
	}

	if err := u.rentals.UpdateEnd(ctx, id, newEnd); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Either the rental turned terminal under us or the extension ran
			// into the booking exclusion constraint; tell them apart so the
			// caller gets a usable answer.
			if fresh, ferr := u.rentals.FindByID(ctx, id); ferr == nil && fresh.Status().IsTerminal() {
				return nil, errs.Mark(err, errs.ErrRentalFinished)
			}
			if availErr := u.ensureAvailableExcluding(ctx, ren.CarID(), currentEnd, newEnd, id); availErr != nil {
				return nil, availErr
			}
			return nil, errs.Mark(err, errs.ErrConstraintViolation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.availability.Invalidate(ctx, ren.CarID())
	return u.views.GetByID(ctx, id)
}

// CompleteRental settles the booking: cost is the hourly rate times the
// elapsed hours rounded up, the rental becomes COMPLETED.
func (u *rentalUseCaseImpl) CompleteRental(ctx context.Context, id uuid.UUID, actualReturn time.Time) (*queries.RentalView, error) {
	view, err := u.completeRental(ctx, id, actualReturn)
	metrics.ObserveOperation("complete", err)
	return view, err
}

func (u *rentalUseCaseImpl) completeRental(ctx context.Context, id uuid.UUID, actualReturn time.Time) (*queries.RentalView, error) {
	ren, err := u.findRental(ctx, id)
	if err != nil {
		return nil, err
	}

	carSnap, err := u.cars.FindByID(ctx, ren.CarID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCarNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := ren.Complete(actualReturn, u.clk.Now(), carSnap.HourlyRateCents, u.cfg.RequireActiveOnComplete); err != nil {
		switch {
		case errors.Is(err, rental.ErrAlreadyFinished):
			return nil, errs.Mark(err, errs.ErrRentalFinished)
		case errors.Is(err, rental.ErrNotActive):
			return nil, errs.Mark(err, errs.ErrRentalNotActive)
		case errors.Is(err, rental.ErrInvalidReturnDate):
			return nil, errs.Mark(err, errs.ErrInvalidReturnDate)
		default:
			return nil, err
		}
	}

	if err := u.rentals.Complete(ctx, ren); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another writer finished the rental between read and write.
			return nil, errs.Mark(err, errs.ErrRentalFinished)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.markCarStatus(ctx, ren.CarID(), car.StatusAvailable)
	u.availability.Invalidate(ctx, ren.CarID())
	u.publishEvent(ctx, queue.QueueRentalCompleted, ren)

	return u.views.GetByID(ctx, id)
}

// CancelRental transitions an AWAITING rental to CANCELLED. Any other state
// is a silent no-op returning the unchanged rental.
func (u *rentalUseCaseImpl) CancelRental(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	view, err := u.cancelRental(ctx, id)
	metrics.ObserveOperation("cancel", err)
	return view, err
}

func (u *rentalUseCaseImpl) cancelRental(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	ren, err := u.findRental(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ren.Cancel() {
		return u.views.GetByID(ctx, id)
	}

	if err := u.rentals.Cancel(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the race to another transition; cancel stays a no-op.
			return u.views.GetByID(ctx, id)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.availability.Invalidate(ctx, ren.CarID())
	return u.views.GetByID(ctx, id)
}

// DeleteRental hard-deletes the record regardless of its state. Returns
// false when no rental carried the ID.
func (u *rentalUseCaseImpl) DeleteRental(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := u.deleteRental(ctx, id)
	metrics.ObserveOperation("delete", err)
	return deleted, err
}

func (u *rentalUseCaseImpl) deleteRental(ctx context.Context, id uuid.UUID) (bool, error) {
	ren, err := u.rentals.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	deleted, err := u.rentals.Delete(ctx, id)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if deleted {
		u.availability.Invalidate(ctx, ren.CarID())
	}
	return deleted, nil
}

// IsCarAvailable answers whether the car has no conflicting booking in the
// half-open [start, end). Cached answers may be stale; booking itself never
// trusts them.
func (u *rentalUseCaseImpl) IsCarAvailable(ctx context.Context, carID uuid.UUID, start, end time.Time) (bool, error) {
	period, err := rental.NewPeriod(start, end)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidPeriod)
	}

	carExists, err := u.cars.Exists(ctx, carID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !carExists {
		return false, errs.ErrCarNotFound
	}

	if available, ok := u.availability.Get(ctx, carID, period.Start(), period.End()); ok {
		return available, nil
	}

	overlapping, err := u.rentals.FindOverlapping(ctx, carID, period.Start(), period.End())
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	available := len(overlapping) == 0
	u.availability.Set(ctx, carID, period.Start(), period.End(), available)
	return available, nil
}

func (u *rentalUseCaseImpl) findRental(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	ren, err := u.rentals.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRentalNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ren, nil
}

func (u *rentalUseCaseImpl) ensureAvailable(ctx context.Context, carID uuid.UUID, period rental.Period) error {
	overlapping, err := u.rentals.FindOverlapping(ctx, carID, period.Start(), period.End())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(overlapping) > 0 {
		metrics.RentalConflicts.Inc()
		first := overlapping[0]
		conflict := &ConflictError{
			RentalID: first.ID(),
			StartAt:  first.Period().Start(),
			EndAt:    first.Period().End(),
		}
		return errs.Mark(conflict, errs.ErrCarUnavailable)
	}
	return nil
}

func (u *rentalUseCaseImpl) ensureAvailableExcluding(ctx context.Context, carID uuid.UUID, start, end time.Time, exclude uuid.UUID) error {
	overlapping, err := u.rentals.FindOverlapping(ctx, carID, start, end)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, other := range overlapping {
		if other.ID() == exclude {
			continue
		}
		metrics.RentalConflicts.Inc()
		conflict := &ConflictError{
			RentalID: other.ID(),
			StartAt:  other.Period().Start(),
			EndAt:    other.Period().End(),
		}
		return errs.Mark(conflict, errs.ErrCarUnavailable)
	}
	return nil
}

// markCarStatus is advisory: the rentals table is the source of truth and
// the reconciler repairs drift, so failures only get logged.
func (u *rentalUseCaseImpl) markCarStatus(ctx context.Context, carID uuid.UUID, status car.Status) {
	if err := u.cars.UpdateStatus(ctx, carID, status); err != nil {
		slog.Warn("advisory car status update failed",
			"car_id", carID, "status", status.String(), "error", err.Error())
	}
}

func (u *rentalUseCaseImpl) publishEvent(ctx context.Context, queueName string, ren *rental.Rental) {
	if u.events == nil {
		return
	}
	event := queue.RentalEvent{
		RentalID:       ren.ID(),
		CarID:          ren.CarID(),
		ClientID:       ren.ClientID(),
		Status:         ren.Status().String(),
		TotalCostCents: ren.TotalCostCents(),
		OccurredAt:     u.clk.Now(),
	}
	// Best effort; the publisher already logs its own failures.
	_ = u.events.Publish(ctx, queueName, event)
}
