package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so callers can branch with the standard library's
// errors.Is while the original cause stays reachable for errors.As and
// logging. Both ends of the chain are exposed through multi-unwrap.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() []error { return []error{e.cause, e.mark} }
