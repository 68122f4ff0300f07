package rental

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("rental period end must be after start")
	ErrNotesTooLong  = errors.New("notes are too long (max 1000 characters)")
)

const MaxNotesLength = 1000

// Period is the half-open interval [start, end) a car is claimed for.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps uses half-open semantics: a period ending exactly when another
// starts does not overlap it.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

func (p Period) WithEnd(newEnd time.Time) (Period, error) {
	return NewPeriod(p.start, newEnd)
}

func (p Period) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: trimmed}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
