package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// ItemStatus is the pick progress of one order line. It is derived from the
// picked quantity, never settable independently.
type ItemStatus int

const (
	// ItemStatusPending means nothing has been picked yet.
	ItemStatusPending ItemStatus = iota
	// ItemStatusPartialPicked means some but not all quantity is picked.
	ItemStatusPartialPicked
	// ItemStatusFullyPicked means the full quantity is picked.
	ItemStatusFullyPicked
)

// String returns the human-readable name of the item status.
func (s ItemStatus) String() string {
	switch s {
	case ItemStatusPending:
		return "Pending"
	case ItemStatusPartialPicked:
		return "PartialPicked"
	case ItemStatusFullyPicked:
		return "FullyPicked"
	}
	return "Unknown"
}

// Item is one SKU/quantity line within an order. It is owned exclusively by
// its Order aggregate; picks are applied through Order.ApplyPick so progress
// and status recomputation stay in one place.
//
// Invariant: 0 ≤ pickedQuantity ≤ quantity.
type Item struct {
	id             kernel.UUID
	skuID          kernel.UUID
	quantity       int
	pickedQuantity int

	isConstructed bool
}

// NewItem creates an order line for the given SKU and requested quantity.
func NewItem(id kernel.UUID, skuID kernel.UUID, quantity int) (*Item, error) {
	if err := errors.Join(id.Validate(), skuID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Item{
		id:            id,
		skuID:         skuID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(id kernel.UUID, skuID kernel.UUID, quantity, pickedQuantity int) (*Item, error) {
	item, err := NewItem(id, skuID, quantity)
	if err != nil {
		return nil, err
	}
	if pickedQuantity < 0 || pickedQuantity > quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause("pickedQuantity",
			fmt.Errorf("%d is not in range [0..%d]", pickedQuantity, quantity))
	}
	item.pickedQuantity = pickedQuantity
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKUID returns the identifier of the requested SKU.
func (i *Item) SKUID() kernel.UUID {
	return i.skuID
}

// Quantity returns the requested quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// PickedQuantity returns the quantity fulfilled so far.
func (i *Item) PickedQuantity() int {
	return i.pickedQuantity
}

// RemainingQuantity returns the quantity still to pick.
func (i *Item) RemainingQuantity() int {
	return i.quantity - i.pickedQuantity
}

// Status derives the item status from the picked quantity.
func (i *Item) Status() ItemStatus {
	switch {
	case i.pickedQuantity == 0:
		return ItemStatusPending
	case i.pickedQuantity < i.quantity:
		return ItemStatusPartialPicked
	default:
		return ItemStatusFullyPicked
	}
}

// CompletionRatio returns pickedQuantity/quantity in [0..1].
func (i *Item) CompletionRatio() float64 {
	return float64(i.pickedQuantity) / float64(i.quantity)
}

// applyPick adds qty to the picked quantity. Fails with ErrOverPick when the
// result would exceed the requested quantity. Called by Order.ApplyPick only.
func (i *Item) applyPick(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if i.pickedQuantity+qty > i.quantity {
		return errs.NewOverPickError(i.id.String(), i.pickedQuantity+qty, i.quantity)
	}

	i.pickedQuantity += qty
	return nil
}
