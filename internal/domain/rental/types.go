package rental

type Status string

const (
	StatusAwaiting  Status = "AWAITING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAwaiting, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition exists out of s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
