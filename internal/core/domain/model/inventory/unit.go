package inventory

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrUnitIsNotConstructed is returned when an InventoryUnit instance was
	// not created through NewUnit or RestoreUnit.
	ErrUnitIsNotConstructed = errors.New("InventoryUnit must be created via NewUnit constructor")
)

// Unit is the quantity of one SKU held at one bin location. It is the only
// aggregate in the system that requires fine-grained locking: the persistence
// layer loads it under a row lock, the aggregate mutates in memory, and the
// same transaction writes it back.
//
// Invariants maintained by every method:
//   - quantity ≥ 0
//   - 0 ≤ reserved ≤ quantity
//
// Available() is always derived as quantity - reserved and is never stored
// independently of its inputs.
type Unit struct {
	id       kernel.UUID
	skuID    kernel.UUID
	binCode  kernel.BinCode
	quantity int
	reserved int

	isConstructed bool
}

// NewUnit creates a unit for a SKU at a bin with an initial on-hand quantity
// and no reservations. Used when stock is first received at a bin.
func NewUnit(id kernel.UUID, skuID kernel.UUID, binCode kernel.BinCode, quantity int) (*Unit, error) {
	if err := errors.Join(id.Validate(), skuID.Validate(), binCode.Validate()); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 0", quantity))
	}

	return &Unit{
		id:            id,
		skuID:         skuID,
		binCode:       binCode,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreUnit reconstructs a unit from persistence, revalidating the
// invariants against possibly corrupted stored values.
func RestoreUnit(id kernel.UUID, skuID kernel.UUID, binCode kernel.BinCode, quantity, reserved int) (*Unit, error) {
	unit, err := NewUnit(id, skuID, binCode, quantity)
	if err != nil {
		return nil, err
	}
	if reserved < 0 || reserved > quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause("reserved",
			fmt.Errorf("%d is not in range [0..%d]", reserved, quantity))
	}
	unit.reserved = reserved
	return unit, nil
}

// Validate ensures the unit was created through a constructor.
func (u *Unit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnitIsNotConstructed
	}
	return nil
}

// ID returns the unit's unique identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// SKUID returns the identifier of the stocked SKU.
func (u *Unit) SKUID() kernel.UUID {
	return u.skuID
}

// BinCode returns the slot code of the holding bin.
func (u *Unit) BinCode() kernel.BinCode {
	return u.binCode
}

// Quantity returns the on-hand quantity, including reserved stock.
func (u *Unit) Quantity() int {
	return u.quantity
}

// Reserved returns the quantity committed to open orders.
func (u *Unit) Reserved() int {
	return u.reserved
}

// Available returns the quantity free for new reservations.
func (u *Unit) Available() int {
	return u.quantity - u.reserved
}

// Reserve commits qty of the available stock to an order. Fails with
// ErrInsufficientAvailability and no side effects when available < qty.
func (u *Unit) Reserve(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}
	if u.Available() < qty {
		return errs.NewInsufficientAvailabilityError(
			u.skuID.String(), u.binCode.String(), qty, u.Available())
	}

	u.reserved += qty
	return nil
}

// Deduct physically removes qty from the bin, consuming its prior
// reservation: both quantity and reserved decrease. Fails with
// ErrInvalidStateTransition when the bin holds fewer than qty reserved;
// deduction without a covering reservation indicates a protocol violation,
// not a stock shortage.
func (u *Unit) Deduct(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}
	if u.reserved < qty {
		return errs.NewInvalidStateTransitionError("inventory unit",
			fmt.Sprintf("reserved=%d", u.reserved), fmt.Sprintf("deduct %d", qty))
	}

	u.quantity -= qty
	u.reserved -= qty
	return nil
}

// Release abandons qty of reservation without removing stock; the goods stay
// on hand and become available again. Used when an order is cancelled or a
// task is skipped.
func (u *Unit) Release(qty int) error {
	if err := validateQty(qty); err != nil {
		return err
	}
	if u.reserved < qty {
		return errs.NewInvalidStateTransitionError("inventory unit",
			fmt.Sprintf("reserved=%d", u.reserved), fmt.Sprintf("release %d", qty))
	}

	u.reserved -= qty
	return nil
}

// Adjust applies an administrative correction (cycle count, receipt) of
// delta, positive or negative. It must not drive the on-hand quantity
// negative or below the reserved quantity.
func (u *Unit) Adjust(delta int) error {
	if delta == 0 {
		return errs.NewValueIsRequiredError("delta")
	}

	newQuantity := u.quantity + delta
	if newQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delta",
			fmt.Errorf("adjustment of %d would drive quantity %d negative", delta, u.quantity))
	}
	if newQuantity < u.reserved {
		return errs.NewValueIsInvalidErrorWithCause("delta",
			fmt.Errorf("adjustment of %d would drive quantity below reserved %d", delta, u.reserved))
	}

	u.quantity = newQuantity
	return nil
}

func validateQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	return nil
}
