package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyFinished   = errors.New("rental is already completed or cancelled")
	ErrNotActive         = errors.New("rental has not started yet")
	ErrInvalidReturnDate = errors.New("actual return date is outside the allowed range")
)

// Rental is a time-bounded claim on a car by a client. Status moves only
// through Extend/Complete/Cancel; actualReturnAt and totalCostCents are
// written exactly once, during completion.
type Rental struct {
	id             uuid.UUID
	carID          uuid.UUID
	clientID       uuid.UUID
	issuerID       *uuid.UUID
	period         Period
	actualReturnAt *time.Time
	totalCostCents *int64
	status         Status
	notes          Notes
	createdAt      time.Time
}

// NewRental starts the lifecycle: a rental whose period is already underway
// at evaluation time begins ACTIVE, otherwise it waits as AWAITING.
func NewRental(
	carID, clientID uuid.UUID,
	issuerID *uuid.UUID,
	period Period,
	notes Notes,
	now time.Time,
) *Rental {
	status := StatusActive
	if period.Start().After(now) {
		status = StatusAwaiting
	}

	return &Rental{
		id:        uuid.New(),
		carID:     carID,
		clientID:  clientID,
		issuerID:  issuerID,
		period:    period,
		status:    status,
		notes:     notes,
		createdAt: now,
	}
}

func ReconstructRental(
	id, carID, clientID uuid.UUID,
	issuerID *uuid.UUID,
	period Period,
	actualReturnAt *time.Time,
	totalCostCents *int64,
	status Status,
	notes Notes,
	createdAt time.Time,
) *Rental {
	return &Rental{
		id:             id,
		carID:          carID,
		clientID:       clientID,
		issuerID:       issuerID,
		period:         period,
		actualReturnAt: actualReturnAt,
		totalCostCents: totalCostCents,
		status:         status,
		notes:          notes,
		createdAt:      createdAt,
	}
}

// Extend pushes the period end forward. A new end at or before the current
// one, or a rental already in a terminal state, leaves the rental unchanged
// and reports false.
func (r *Rental) Extend(newEnd time.Time) bool {
	if r.status.IsTerminal() {
		return false
	}
	if !newEnd.After(r.period.End()) {
		return false
	}

	extended, err := r.period.WithEnd(newEnd)
	if err != nil {
		return false
	}
	r.period = extended
	return true
}

// Complete settles the rental: the return instant must not precede the start
// and must not be in the future relative to now. requireActive rejects
// completion of a rental that never left AWAITING.
func (r *Rental) Complete(actualReturn, now time.Time, rateCents int64, requireActive bool) error {
	if r.status.IsTerminal() {
		return ErrAlreadyFinished
	}
	if requireActive && r.status != StatusActive {
		return ErrNotActive
	}
	if actualReturn.Before(r.period.Start()) || actualReturn.After(now) {
		return ErrInvalidReturnDate
	}

	cost := SettleCost(rateCents, r.period.Start(), actualReturn)
	r.actualReturnAt = &actualReturn
	r.totalCostCents = &cost
	r.status = StatusCompleted
	return nil
}

// Cancel applies only while the rental is AWAITING; a started rental can
// only be completed. Returns false when nothing changed.
func (r *Rental) Cancel() bool {
	if r.status != StatusAwaiting {
		return false
	}
	r.status = StatusCancelled
	return true
}

func (r *Rental) ID() uuid.UUID              { return r.id }
func (r *Rental) CarID() uuid.UUID           { return r.carID }
func (r *Rental) ClientID() uuid.UUID        { return r.clientID }
func (r *Rental) IssuerID() *uuid.UUID       { return r.issuerID }
func (r *Rental) Period() Period             { return r.period }
func (r *Rental) ActualReturnAt() *time.Time { return r.actualReturnAt }
func (r *Rental) TotalCostCents() *int64     { return r.totalCostCents }
func (r *Rental) Status() Status             { return r.status }
func (r *Rental) Notes() Notes               { return r.notes }
func (r *Rental) CreatedAt() time.Time       { return r.createdAt }
