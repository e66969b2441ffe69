package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseBackordersCommandIsNotConstructed = errors.New(
	"ReleaseBackordersCommand must be created via NewReleaseBackordersCommand constructor",
)

// ReleaseBackordersCommand represents a sweep over backordered orders,
// returning to the Pending queue every order whose items can now be covered
// from stock. The actor is the system identity of the sweep.
type ReleaseBackordersCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseBackordersCommand creates a command to sweep backordered orders.
func NewReleaseBackordersCommand(actorID kernel.UUID) (ReleaseBackordersCommand, error) {
	cmd := ReleaseBackordersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActorID(actorID); err != nil {
		return ReleaseBackordersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseBackordersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseBackordersCommandIsNotConstructed)
}

// ActorID returns the system identity recorded on released transitions.
func (c ReleaseBackordersCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReleaseBackordersCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
