package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("pickerId")

	assert.Equal(t, "pickerId", err.ParamName)
	assert.Equal(t, "value is required: pickerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-3 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: -3 is not greater than 0)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestInsufficientAvailabilityError(t *testing.T) {
	err := errs.NewInsufficientAvailabilityError("WIDGET-1", "A-01-01", 8, 5)

	assert.Equal(t, 8, err.Requested)
	assert.Equal(t, 5, err.Available)
	assert.Equal(t,
		"insufficient availability: requested 8 of WIDGET-1 at A-01-01, available 5",
		err.Error())
	assert.Equal(t, errs.ErrInsufficientAvailability, err.Unwrap())
}

func TestInvalidStateTransitionError(t *testing.T) {
	err := errs.NewInvalidStateTransitionError("order", "Pending", "Shipped")

	assert.Equal(t, "invalid state transition: order cannot go from Pending to Shipped", err.Error())
	assert.Equal(t, errs.ErrInvalidStateTransition, err.Unwrap())
}

func TestAlreadyClaimedError(t *testing.T) {
	err := errs.NewAlreadyClaimedError("o-1", "Picking")

	assert.Equal(t, "order already claimed: order o-1 is in status Picking", err.Error())
	assert.Equal(t, errs.ErrAlreadyClaimed, err.Unwrap())
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("p-1", 3, 3)

	assert.Equal(t, "capacity exceeded: operator p-1 has 3 orders in flight, limit is 3", err.Error())
	assert.Equal(t, errs.ErrCapacityExceeded, err.Unwrap())
}

func TestOverPickError(t *testing.T) {
	err := errs.NewOverPickError("t-1", 7, 5)

	assert.Equal(t, "picked quantity exceeds requested quantity: task t-1 requested 5, picked 7", err.Error())
	assert.Equal(t, errs.ErrOverPick, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		var err error = errs.NewInsufficientAvailabilityError("W", "A-01-01", 8, 5)
		assert.ErrorIs(t, err, errs.ErrInsufficientAvailability)

		err = errs.NewAlreadyClaimedError("o-1", "Picking")
		assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)

		err = errs.NewObjectNotFoundError("orderId", "123")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("errors.As extracts details", func(t *testing.T) {
		var err error = errs.NewCapacityExceededError("p-1", 3, 3)

		var capErr *errs.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 3, capErr.Limit)
	})
}
