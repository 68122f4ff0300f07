package queries

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// RentalView is the read-time projection joining the rental with current
// car/client/issuer snapshots. The engine itself never owns foreign entity
// state; this composition happens in the read path only.
type RentalView struct {
	ID                 uuid.UUID  `json:"id"`
	CarID              uuid.UUID  `json:"car_id"`
	CarLicensePlate    string     `json:"car_license_plate"`
	CarStatus          string     `json:"car_status"`
	CarHourlyRateCents int64      `json:"car_hourly_rate_cents"`
	ClientID           uuid.UUID  `json:"client_id"`
	ClientName         string     `json:"client_name"`
	IssuerID           *uuid.UUID `json:"issuer_id,omitempty"`
	IssuerName         *string    `json:"issuer_name,omitempty"`
	StartAt            time.Time  `json:"start_at"`
	EndAt              time.Time  `json:"end_at"`
	ActualReturnAt     *time.Time `json:"actual_return_at,omitempty"`
	TotalCostCents     *int64     `json:"total_cost_cents,omitempty"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// RentalFilter narrows List results; fields combine with AND semantics.
// TimeRange, when set, must hold exactly two instants and matches rentals
// whose start or end falls within them.
type RentalFilter struct {
	CarID     *uuid.UUID
	ClientID  *uuid.UUID
	IssuerID  *uuid.UUID
	Status    *string
	TimeRange []time.Time
}

type RentalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	List(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
}

type RentalViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindViewsByFilter(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
}

type rentalQueriesImpl struct {
	repo RentalViewRepo
}

func NewRentalQueries(repo RentalViewRepo) RentalQueries {
	return &rentalQueriesImpl{repo: repo}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRentalNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) List(ctx context.Context, filter RentalFilter) ([]*RentalView, error) {
	return q.repo.FindViewsByFilter(ctx, filter)
}
