package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.StatusPending.String())
	assert.Equal(t, "Picking", order.StatusPicking.String())
	assert.Equal(t, "Shipped", order.StatusShipped.String())
	assert.Equal(t, "Backorder", order.StatusBackorder.String())
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusPending.Validate())
	require.NoError(t, order.StatusBackorder.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusShipped.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusPacked.IsTerminal())
}

func TestStatus_Claim(t *testing.T) {
	t.Run("pending_can_be_claimed", func(t *testing.T) {
		next, err := order.StatusPending.Claim()
		require.NoError(t, err)
		assert.Equal(t, order.StatusPicking, next)
	})

	t.Run("non_pending_fails_with_already_claimed", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPicking, order.StatusPicked, order.StatusPacking,
			order.StatusPacked, order.StatusShipped, order.StatusCancelled,
			order.StatusBackorder,
		} {
			_, err := s.Claim()
			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrAlreadyClaimed, s.String())
		}
	})
}

// Exhaustive walk of the happy path plus the guards around every transition.
func TestStatus_TransitionTable(t *testing.T) {
	type transition struct {
		name string
		call func(order.Status) (order.Status, error)
		from order.Status
		to   order.Status
	}

	transitions := []transition{
		{"Claim", order.Status.Claim, order.StatusPending, order.StatusPicking},
		{"MarkPicked", order.Status.MarkPicked, order.StatusPicking, order.StatusPicked},
		{"ClaimForPacking", order.Status.ClaimForPacking, order.StatusPicked, order.StatusPacking},
		{"MarkPacked", order.Status.MarkPacked, order.StatusPacking, order.StatusPacked},
		{"Ship", order.Status.Ship, order.StatusPacked, order.StatusShipped},
		{"MarkBackordered", order.Status.MarkBackordered, order.StatusPending, order.StatusBackorder},
		{"ReleaseBackorder", order.Status.ReleaseBackorder, order.StatusBackorder, order.StatusPending},
	}

	allStatuses := []order.Status{
		order.StatusPending, order.StatusPicking, order.StatusPicked,
		order.StatusPacking, order.StatusPacked, order.StatusShipped,
		order.StatusCancelled, order.StatusBackorder,
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range allStatuses {
				next, err := tr.call(from)
				if from == tr.from {
					require.NoError(t, err)
					assert.Equal(t, tr.to, next)
				} else {
					require.Error(t, err, "from %s", from)
				}
			}
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("any_non_terminal_can_be_cancelled", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending, order.StatusPicking, order.StatusPicked,
			order.StatusPacking, order.StatusPacked, order.StatusBackorder,
		} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.StatusCancelled, next)
		}
	})

	t.Run("terminal_states_cannot_be_cancelled", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusShipped, order.StatusCancelled} {
			_, err := s.Cancel()
			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})

	t.Run("unknown_status_cannot_be_cancelled", func(t *testing.T) {
		_, err := order.StatusUnknown.Cancel()
		require.Error(t, err)
	})
}

func TestPriority(t *testing.T) {
	assert.Equal(t, "Low", order.PriorityLow.String())
	assert.Equal(t, "Urgent", order.PriorityUrgent.String())
	assert.Equal(t, "Unknown", order.Priority(42).String())

	require.NoError(t, order.PriorityNormal.Validate())
	require.Error(t, order.PriorityUnknown.Validate())
}
