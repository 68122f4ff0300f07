package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RentalResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CarID              uuid.UUID  `json:"carId"`
	CarLicensePlate    string     `json:"carLicensePlate"`
	CarStatus          string     `json:"carStatus"`
	CarHourlyRateCents int64      `json:"carHourlyRateCents"`
	ClientID           uuid.UUID  `json:"clientId"`
	ClientName         string     `json:"clientName"`
	IssuerID           *uuid.UUID `json:"issuerId,omitempty"`
	IssuerName         *string    `json:"issuerName,omitempty"`
	StartAt            time.Time  `json:"startAt"`
	EndAt              time.Time  `json:"endAt"`
	ActualReturnAt     *time.Time `json:"actualReturnAt,omitempty"`
	TotalCostCents     *int64     `json:"totalCostCents,omitempty"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func FromRentalView(view *queries.RentalView) *RentalResponse {
	var resp RentalResponse
	// Field names line up one to one; copier keeps this mapping from rotting
	// when columns are added to the view.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRentalViews(views []*queries.RentalView) []*RentalResponse {
	result := make([]*RentalResponse, len(views))
	for i, view := range views {
		result[i] = FromRentalView(view)
	}
	return result
}

type AvailabilityResponse struct {
	CarID     uuid.UUID `json:"carId"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Available bool      `json:"available"`
}

type ConflictDetail struct {
	RentalID uuid.UUID `json:"rentalId"`
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
}
