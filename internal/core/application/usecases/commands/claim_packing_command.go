package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrClaimPackingCommandIsNotConstructed = errors.New(
	"ClaimPackingCommand must be created via NewClaimPackingCommand constructor",
)

// ClaimPackingCommand represents a packer's request to take ownership of a
// fully picked order at the packing station.
type ClaimPackingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	packerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimPackingCommand creates a command to claim an order for packing.
func NewClaimPackingCommand(orderID, packerID kernel.UUID) (ClaimPackingCommand, error) {
	cmd := ClaimPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackerID(packerID),
	); err != nil {
		return ClaimPackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimPackingCommand) Validate() error {
	return c.guard.Validate(ErrClaimPackingCommandIsNotConstructed)
}

// OrderID returns the order to pack.
func (c ClaimPackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PackerID returns the claiming packer.
func (c ClaimPackingCommand) PackerID() kernel.UUID {
	return c.packerID
}

func (c *ClaimPackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimPackingCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	c.packerID = packerID
	return nil
}
