package order

import (
	"errors"
	"math"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when attempting to create an order
	// without any line items.
	ErrOrderHasNoItems = errors.New("order must have at least one item")
)

// Order is the aggregate root for a customer fulfillment request. It owns its
// line items and the authoritative status state machine, derives progress
// after every item mutation, and records exactly one StateChange per status
// transition.
//
// Invariants:
//   - status transitions follow the table in Status
//   - progress always equals round(avg(picked/quantity) * 100) over all items
//   - every successful transition appends one StateChange to the pending
//     changes, drained by the repository in the same database transaction
//     as the status write
//
// Orders are retained indefinitely; there is no delete operation.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	priority   Priority
	status     Status
	items      []*Item
	progress   int

	pickerID *kernel.UUID
	packerID *kernel.UUID

	createdAt   time.Time
	claimedAt   *time.Time
	pickedAt    *time.Time
	packedAt    *time.Time
	shippedAt   *time.Time
	cancelledAt *time.Time

	pendingChanges []*StateChange

	isConstructed bool
}

// Timestamps groups the lifecycle milestone times for restoring an order
// from persistence.
type Timestamps struct {
	CreatedAt   time.Time
	ClaimedAt   *time.Time
	PickedAt    *time.Time
	PackedAt    *time.Time
	ShippedAt   *time.Time
	CancelledAt *time.Time
}

// NewOrder creates an order in Pending status with the given line items.
// At least one item is required.
func NewOrder(id kernel.UUID, customerID kernel.UUID, priority Priority, items []*Item) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), priority.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		priority:      priority,
		status:        StatusPending,
		items:         items,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Progress is recomputed
// from the restored items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	priority Priority,
	status Status,
	items []*Item,
	pickerID *kernel.UUID,
	packerID *kernel.UUID,
	ts Timestamps,
) (*Order, error) {
	o, err := NewOrder(id, customerID, priority, items)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.pickerID = pickerID
	o.packerID = packerID
	o.createdAt = ts.CreatedAt
	o.claimedAt = ts.ClaimedAt
	o.pickedAt = ts.PickedAt
	o.packedAt = ts.PackedAt
	o.shippedAt = ts.ShippedAt
	o.cancelledAt = ts.CancelledAt
	o.recalculateProgress()
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Priority returns the queue priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the line item with the given identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// Progress returns the derived completion percentage in [0..100]:
// the rounded unweighted average of per-item completion ratios.
func (o *Order) Progress() int {
	return o.progress
}

// PickerID returns the assigned picker, nil before the order is claimed.
func (o *Order) PickerID() *kernel.UUID {
	return o.pickerID
}

// PackerID returns the assigned packer, nil before packing is claimed.
func (o *Order) PackerID() *kernel.UUID {
	return o.packerID
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ClaimedAt returns when the order was claimed for picking, if it was.
func (o *Order) ClaimedAt() *time.Time {
	return o.claimedAt
}

// PickedAt returns when the last item was fully picked, if it was.
func (o *Order) PickedAt() *time.Time {
	return o.pickedAt
}

// PackedAt returns when packing was verified, if it was.
func (o *Order) PackedAt() *time.Time {
	return o.packedAt
}

// ShippedAt returns when the carrier handoff was confirmed, if it was.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// CancelledAt returns when the order was cancelled, if it was.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Claim assigns the order to a picker and transitions Pending -> Picking.
// A claim on an order that is no longer Pending fails with ErrAlreadyClaimed:
// the losing side of a concurrent claim race observes the winner's already
// committed status under the order's row lock.
func (o *Order) Claim(pickerID kernel.UUID) error {
	if err := pickerID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.Claim(); err != nil {
		return errs.NewAlreadyClaimedError(o.id.String(), o.status.String())
	}

	o.transitionTo(StatusPicking, pickerID)
	o.pickerID = &pickerID
	o.claimedAt = nowPtr()
	return nil
}

// ApplyPick adds qty to the picked quantity of the given item, recomputes
// progress, and auto-advances Picking -> Picked once every item is fully
// picked. Only legal while the order is in Picking.
func (o *Order) ApplyPick(actorID kernel.UUID, itemID kernel.UUID, qty int) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.status != StatusPicking {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), "apply pick")
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	if err = item.applyPick(qty); err != nil {
		return err
	}

	o.recalculateProgress()

	if o.allItemsFullyPicked() {
		if _, err = o.status.MarkPicked(); err != nil {
			return err
		}
		o.transitionTo(StatusPicked, actorID)
		o.pickedAt = nowPtr()
	}

	return nil
}

// ClaimForPacking assigns the order to a packer and transitions
// Picked -> Packing.
func (o *Order) ClaimForPacking(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.ClaimForPacking(); err != nil {
		return err
	}

	o.transitionTo(StatusPacking, packerID)
	o.packerID = &packerID
	return nil
}

// MarkPacked verifies packing and transitions Packing -> Packed.
func (o *Order) MarkPacked(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.MarkPacked(); err != nil {
		return err
	}

	o.transitionTo(StatusPacked, packerID)
	o.packedAt = nowPtr()
	return nil
}

// Ship confirms carrier handoff and transitions Packed -> Shipped.
func (o *Order) Ship(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.Ship(); err != nil {
		return err
	}

	o.transitionTo(StatusShipped, actorID)
	o.shippedAt = nowPtr()
	return nil
}

// Cancel abandons the order from any non-terminal status. Releasing the
// order's outstanding reservations and skipping its open tasks is the
// calling handler's responsibility, within the same transaction.
func (o *Order) Cancel(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.Cancel(); err != nil {
		return err
	}

	o.transitionTo(StatusCancelled, actorID)
	o.cancelledAt = nowPtr()
	return nil
}

// MarkBackordered routes a Pending order to Backorder when allocation cannot
// be satisfied from any bin for at least one item.
func (o *Order) MarkBackordered(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.MarkBackordered(); err != nil {
		return err
	}

	o.transitionTo(StatusBackorder, actorID)
	return nil
}

// ReleaseBackorder returns a Backorder order to Pending once inventory
// arrives.
func (o *Order) ReleaseBackorder(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if _, err := o.status.ReleaseBackorder(); err != nil {
		return err
	}

	o.transitionTo(StatusPending, actorID)
	return nil
}

// TakeStateChanges drains the transition records accumulated since the order
// was loaded. The repository persists them in the same database transaction
// as the order update, preserving the one-record-per-transition invariant.
func (o *Order) TakeStateChanges() []*StateChange {
	changes := o.pendingChanges
	o.pendingChanges = nil
	return changes
}

func (o *Order) transitionTo(to Status, actorID kernel.UUID) {
	o.pendingChanges = append(o.pendingChanges, newStateChange(o.id, o.status, to, actorID))
	o.status = to
}

// recalculateProgress derives progress as the rounded unweighted average of
// per-item completion ratios. A two-item order with one item 3/3 and one
// item 2/4 yields round((100+50)/2) = 75. The average is intentionally not
// quantity-weighted.
func (o *Order) recalculateProgress() {
	if len(o.items) == 0 {
		o.progress = 0
		return
	}

	var sum float64
	for _, item := range o.items {
		sum += item.CompletionRatio()
	}
	o.progress = int(math.Round(sum / float64(len(o.items)) * 100))
}

func (o *Order) allItemsFullyPicked() bool {
	for _, item := range o.items {
		if item.Status() != ItemStatusFullyPicked {
			return false
		}
	}
	return true
}

func nowPtr() *time.Time {
	now := time.Now().UTC()
	return &now
}
