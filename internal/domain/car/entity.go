package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLicensePlate = errors.New("license plate cannot be empty")
	ErrNonPositiveRate   = errors.New("hourly rate must be positive")
	ErrInvalidStatus     = errors.New("invalid car status")
)

type Status string

const (
	StatusAvailable    Status = "AVAILABLE"
	StatusNotAvailable Status = "NOT_AVAILABLE"
	StatusRented       Status = "RENTED"
	StatusMaintenance  Status = "MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusNotAvailable, StatusRented, StatusMaintenance:
		return true
	default:
		return false
	}
}

type Car struct {
	id              uuid.UUID
	licensePlate    string
	vin             string
	hourlyRateCents int64
	status          Status
	changedAt       time.Time
}

func NewCar(id uuid.UUID, licensePlate, vin string, hourlyRateCents int64, status Status) (*Car, error) {
	if strings.TrimSpace(licensePlate) == "" {
		return nil, ErrEmptyLicensePlate
	}
	if hourlyRateCents <= 0 {
		return nil, ErrNonPositiveRate
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Car{
		id:              id,
		licensePlate:    strings.TrimSpace(licensePlate),
		vin:             strings.TrimSpace(vin),
		hourlyRateCents: hourlyRateCents,
		status:          status,
	}, nil
}

func (c *Car) ID() uuid.UUID          { return c.id }
func (c *Car) LicensePlate() string   { return c.licensePlate }
func (c *Car) VIN() string            { return c.vin }
func (c *Car) HourlyRateCents() int64 { return c.hourlyRateCents }
func (c *Car) Status() Status         { return c.status }
func (c *Car) ChangedAt() time.Time   { return c.changedAt }
