package queries

import (
	"time"

	"car-rental-api/internal/domain/car"

	"github.com/google/uuid"
)

// CarSnapshot is what the engine reads from the car registry: existence,
// rate for settlement, and the advisory status.
type CarSnapshot struct {
	ID              uuid.UUID
	LicensePlate    string
	HourlyRateCents int64
	Status          car.Status
	ChangedAt       time.Time
}

// UserSnapshot covers the issuer-identity contract consumed by auth.
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
}
