//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"car-rental-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type causeError struct {
	code int
}

func (e *causeError) Error() string { return "cause failed" }

func TestMark_SentinelVisibleToStdlibErrorsIs(t *testing.T) {
	t.Parallel()

	cause := &causeError{code: 42}
	err := errs.Mark(cause, errs.ErrCarUnavailable)

	assert.True(t, errors.Is(err, errs.ErrCarUnavailable), "mark must be in the stdlib chain")
	assert.False(t, errors.Is(err, errs.ErrRentalFinished))
}

func TestMark_CauseReachableThroughErrorsAs(t *testing.T) {
	t.Parallel()

	cause := &causeError{code: 42}
	err := errs.Mark(cause, errs.ErrInvalidPeriod)

	var got *causeError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 42, got.code)
	assert.True(t, errors.Is(err, errs.ErrInvalidPeriod))
}

func TestMark_MessageComesFromCause(t *testing.T) {
	t.Parallel()

	err := errs.Mark(errors.New("low-level detail"), errs.ErrDatabaseOperationFailed)

	assert.Equal(t, "low-level detail", err.Error())
}

func TestMark_NilCauseReturnsMark(t *testing.T) {
	t.Parallel()

	err := errs.Mark(nil, errs.ErrRentalNotFound)

	assert.Equal(t, errs.ErrRentalNotFound, err)
}

func TestMark_WrappedCauseStillTraversed(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection reset")
	err := errs.Mark(errs.Wrap(inner, "query rentals"), errs.ErrDatabaseOperationFailed)

	assert.True(t, errors.Is(err, inner))
	assert.True(t, errors.Is(err, errs.ErrDatabaseOperationFailed))
}
