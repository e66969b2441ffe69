package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReceiveStockCommandIsNotConstructed = errors.New(
	"ReceiveStockCommand must be created via NewReceiveStockCommand constructor",
)

// ReceiveStockCommand represents an inbound delivery of one SKU put away at
// one bin.
type ReceiveStockCommand struct { //nolint:recvcheck //using for validation
	skuID    kernel.UUID
	binCode  kernel.BinCode
	quantity int
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveStockCommand creates a command to receive stock at a bin.
func NewReceiveStockCommand(
	skuID kernel.UUID,
	binCode kernel.BinCode,
	quantity int,
	actorID kernel.UUID,
) (ReceiveStockCommand, error) {
	cmd := ReceiveStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKUID(skuID),
		cmd.setBinCode(binCode),
		cmd.setQuantity(quantity),
		cmd.setActorID(actorID),
	); err != nil {
		return ReceiveStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveStockCommand) Validate() error {
	return c.guard.Validate(ErrReceiveStockCommandIsNotConstructed)
}

// SKUID returns the received SKU.
func (c ReceiveStockCommand) SKUID() kernel.UUID {
	return c.skuID
}

// BinCode returns the destination bin.
func (c ReceiveStockCommand) BinCode() kernel.BinCode {
	return c.binCode
}

// Quantity returns the received quantity.
func (c ReceiveStockCommand) Quantity() int {
	return c.quantity
}

// ActorID returns the receiving operator.
func (c ReceiveStockCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReceiveStockCommand) setSKUID(skuID kernel.UUID) error {
	if err := skuID.Validate(); err != nil {
		return err
	}

	c.skuID = skuID
	return nil
}

func (c *ReceiveStockCommand) setBinCode(binCode kernel.BinCode) error {
	if err := binCode.Validate(); err != nil {
		return err
	}

	c.binCode = binCode
	return nil
}

func (c *ReceiveStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *ReceiveStockCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
