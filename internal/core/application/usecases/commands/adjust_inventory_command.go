package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAdjustInventoryCommandIsNotConstructed = errors.New(
	"AdjustInventoryCommand must be created via NewAdjustInventoryCommand constructor",
)

// AdjustInventoryCommand represents an administrative stock correction for
// one SKU at one bin, typically after a cycle count. The delta is signed and
// a justification is mandatory.
type AdjustInventoryCommand struct { //nolint:recvcheck //using for validation
	skuID   kernel.UUID
	binCode kernel.BinCode
	delta   int
	reason  string
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdjustInventoryCommand creates a command to correct on-hand stock.
func NewAdjustInventoryCommand(
	skuID kernel.UUID,
	binCode kernel.BinCode,
	delta int,
	reason string,
	actorID kernel.UUID,
) (AdjustInventoryCommand, error) {
	cmd := AdjustInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKUID(skuID),
		cmd.setBinCode(binCode),
		cmd.setDelta(delta),
		cmd.setReason(reason),
		cmd.setActorID(actorID),
	); err != nil {
		return AdjustInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustInventoryCommand) Validate() error {
	return c.guard.Validate(ErrAdjustInventoryCommandIsNotConstructed)
}

// SKUID returns the corrected SKU.
func (c AdjustInventoryCommand) SKUID() kernel.UUID {
	return c.skuID
}

// BinCode returns the corrected bin.
func (c AdjustInventoryCommand) BinCode() kernel.BinCode {
	return c.binCode
}

// Delta returns the signed quantity correction.
func (c AdjustInventoryCommand) Delta() int {
	return c.delta
}

// Reason returns the mandatory justification.
func (c AdjustInventoryCommand) Reason() string {
	return c.reason
}

// ActorID returns the adjusting operator.
func (c AdjustInventoryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AdjustInventoryCommand) setSKUID(skuID kernel.UUID) error {
	if err := skuID.Validate(); err != nil {
		return err
	}

	c.skuID = skuID
	return nil
}

func (c *AdjustInventoryCommand) setBinCode(binCode kernel.BinCode) error {
	if err := binCode.Validate(); err != nil {
		return err
	}

	c.binCode = binCode
	return nil
}

func (c *AdjustInventoryCommand) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsRequiredError("delta")
	}

	c.delta = delta
	return nil
}

func (c *AdjustInventoryCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *AdjustInventoryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
