package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmPackedCommandIsNotConstructed = errors.New(
	"ConfirmPackedCommand must be created via NewConfirmPackedCommand constructor",
)

// ConfirmPackedCommand represents a packer confirming that all items of an
// order are verified and boxed.
type ConfirmPackedCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	packerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPackedCommand creates a command to confirm packing of an order.
func NewConfirmPackedCommand(orderID, packerID kernel.UUID) (ConfirmPackedCommand, error) {
	cmd := ConfirmPackedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackerID(packerID),
	); err != nil {
		return ConfirmPackedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPackedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPackedCommandIsNotConstructed)
}

// OrderID returns the packed order.
func (c ConfirmPackedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PackerID returns the confirming packer.
func (c ConfirmPackedCommand) PackerID() kernel.UUID {
	return c.packerID
}

func (c *ConfirmPackedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPackedCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	c.packerID = packerID
	return nil
}
