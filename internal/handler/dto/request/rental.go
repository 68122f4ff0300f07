package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	CarID    uuid.UUID `json:"car_id" binding:"required"`
	ClientID uuid.UUID `json:"client_id" binding:"required"`
	StartAt  time.Time `json:"start_at" binding:"required"`
	EndAt    time.Time `json:"end_at" binding:"required"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r CreateRentalRequest) GetNotes() string {
	if r.Notes == nil {
		return ""
	}
	return strings.TrimSpace(*r.Notes)
}

type ExtendRentalRequest struct {
	NewEndAt time.Time `json:"new_end_at" binding:"required"`
}

type CompleteRentalRequest struct {
	ActualReturnAt time.Time `json:"actual_return_at" binding:"required"`
}

// FilterRentalsRequest comes in as query parameters; all fields are optional
// and combine with AND semantics. From/To must be given together. The ID
// fields bind as strings since gin's form binding cannot populate *uuid.UUID;
// the handler parses them.
type FilterRentalsRequest struct {
	CarID    *string    `form:"car_id"`
	ClientID *string    `form:"client_id"`
	IssuerID *string    `form:"issuer_id"`
	Status   *string    `form:"status"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type AvailabilityRequest struct {
	StartAt time.Time `form:"start_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndAt   time.Time `form:"end_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
