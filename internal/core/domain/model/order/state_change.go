package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrStateChangeIsNotConstructed is returned when a StateChange instance
	// was not created through newStateChange or RestoreStateChange.
	ErrStateChangeIsNotConstructed = errors.New("StateChange must be created via its constructor")
)

// StateChange is the append-only audit record of one order status
// transition. Exactly one StateChange is written in the same database
// transaction as the status write it describes; it is never updated or
// deleted afterwards.
type StateChange struct {
	id         kernel.UUID
	orderID    kernel.UUID
	fromStatus Status
	toStatus   Status
	actorID    kernel.UUID
	occurredAt time.Time

	isConstructed bool
}

// newStateChange records a transition occurring now. Called by the Order
// aggregate whenever a transition method succeeds.
func newStateChange(orderID kernel.UUID, from, to Status, actorID kernel.UUID) *StateChange {
	return &StateChange{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		fromStatus:    from,
		toStatus:      to,
		actorID:       actorID,
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}
}

// RestoreStateChange reconstructs a state change record from persistence.
func RestoreStateChange(
	id kernel.UUID,
	orderID kernel.UUID,
	from, to Status,
	actorID kernel.UUID,
	occurredAt time.Time,
) (*StateChange, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), actorID.Validate()); err != nil {
		return nil, err
	}

	return &StateChange{
		id:            id,
		orderID:       orderID,
		fromStatus:    from,
		toStatus:      to,
		actorID:       actorID,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was created through a constructor.
func (c *StateChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrStateChangeIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (c *StateChange) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order the transition belongs to.
func (c *StateChange) OrderID() kernel.UUID {
	return c.orderID
}

// From returns the status before the transition.
func (c *StateChange) From() Status {
	return c.fromStatus
}

// To returns the status after the transition.
func (c *StateChange) To() Status {
	return c.toStatus
}

// ActorID returns the operator who triggered the transition.
func (c *StateChange) ActorID() kernel.UUID {
	return c.actorID
}

// OccurredAt returns when the transition happened.
func (c *StateChange) OccurredAt() time.Time {
	return c.occurredAt
}
