//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/rental"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// RentalBuilder produces consistent rental fixtures across domain, usecase
// and handler tests. Defaults describe a one-day booking starting tomorrow.
type RentalBuilder struct {
	ID       uuid.UUID
	CarID    uuid.UUID
	ClientID uuid.UUID
	IssuerID *uuid.UUID
	StartAt  time.Time
	EndAt    time.Time
	Notes    string
	Now      time.Time
}

func NewRentalBuilder() *RentalBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		ID:       uuid.New(),
		CarID:    uuid.New(),
		ClientID: uuid.New(),
		StartAt:  now.Add(24 * time.Hour),
		EndAt:    now.Add(48 * time.Hour),
		Notes:    "",
		Now:      now,
	}
}

func (b *RentalBuilder) WithCarID(id uuid.UUID) *RentalBuilder {
	b.CarID = id
	return b
}

func (b *RentalBuilder) WithClientID(id uuid.UUID) *RentalBuilder {
	b.ClientID = id
	return b
}

func (b *RentalBuilder) WithIssuerID(id uuid.UUID) *RentalBuilder {
	b.IssuerID = &id
	return b
}

func (b *RentalBuilder) WithPeriod(start, end time.Time) *RentalBuilder {
	b.StartAt = start
	b.EndAt = end
	return b
}

// WithStartedPeriod makes the rental already underway at build time, so the
// domain constructor picks ACTIVE instead of AWAITING.
func (b *RentalBuilder) WithStartedPeriod() *RentalBuilder {
	b.StartAt = b.Now.Add(-2 * time.Hour)
	b.EndAt = b.Now.Add(22 * time.Hour)
	return b
}

func (b *RentalBuilder) WithNotes(notes string) *RentalBuilder {
	b.Notes = notes
	return b
}

func (b *RentalBuilder) WithNow(now time.Time) *RentalBuilder {
	b.Now = now
	return b
}

func (b *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	period, err := rental.NewPeriod(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	notes, err := rental.NewNotes(b.Notes)
	if err != nil {
		return nil, err
	}
	return rental.NewRental(b.CarID, b.ClientID, b.IssuerID, period, notes, b.Now), nil
}

func (b *RentalBuilder) BuildCreateParams() usecase.CreateRentalParams {
	return usecase.CreateRentalParams{
		CarID:    b.CarID,
		ClientID: b.ClientID,
		IssuerID: b.IssuerID,
		StartAt:  b.StartAt,
		EndAt:    b.EndAt,
		Notes:    b.Notes,
	}
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	req := reqdto.CreateRentalRequest{
		CarID:    b.CarID,
		ClientID: b.ClientID,
		StartAt:  b.StartAt,
		EndAt:    b.EndAt,
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}

func (b *RentalBuilder) BuildView(status rental.Status) *queries.RentalView {
	return &queries.RentalView{
		ID:                 b.ID,
		CarID:              b.CarID,
		CarLicensePlate:    "ABC-1234",
		CarStatus:          "AVAILABLE",
		CarHourlyRateCents: 1000,
		ClientID:           b.ClientID,
		ClientName:         "Test Client",
		IssuerID:           b.IssuerID,
		StartAt:            b.StartAt,
		EndAt:              b.EndAt,
		Status:             status.String(),
		CreatedAt:          b.Now,
	}
}
