package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the fulfillment
// workflow.
//
// State transitions:
//
//	Pending ──> Picking ──> Picked ──> Packing ──> Packed ──> Shipped
//	   │ ▲
//	   ▼ │
//	Backorder
//
//	any non-terminal ──> Cancelled
//
// Shipped and Cancelled are terminal; no transition leaves them. Backorder is
// entered from Pending when the allocator cannot satisfy any bin for at least
// one item, and returns to Pending once inventory arrives.
//
// Status is a value object: transition methods return the new status and
// never mutate the receiver. Illegal transitions are rejected with
// errs.ErrInvalidStateTransition.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the order awaits a picker's claim.
	StatusPending

	// StatusPicking indicates a picker has claimed the order and its pick
	// tasks are being worked.
	StatusPicking

	// StatusPicked indicates every order item is fully picked.
	StatusPicked

	// StatusPacking indicates a packer has claimed the order.
	StatusPacking

	// StatusPacked indicates packing is verified and the order awaits carrier
	// handoff.
	StatusPacked

	// StatusShipped indicates the carrier handoff is confirmed. Terminal.
	StatusShipped

	// StatusCancelled indicates the order was abandoned. Terminal.
	StatusCancelled

	// StatusBackorder indicates current inventory cannot satisfy the order.
	StatusBackorder
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusPicking:   "Picking",
		StatusPicked:    "Picked",
		StatusPacking:   "Packing",
		StatusPacked:    "Packed",
		StatusShipped:   "Shipped",
		StatusCancelled: "Cancelled",
		StatusBackorder: "Backorder",
	}
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusBackorder {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusShipped || s == StatusCancelled
}

// Claim transitions Pending -> Picking. A claim on any other status fails
// with ErrAlreadyClaimed so that the losing side of a concurrent claim race
// observes the dedicated error rather than a generic transition failure.
func (s Status) Claim() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewAlreadyClaimedError("", s.String())
	}
	return StatusPicking, nil
}

// MarkPicked transitions Picking -> Picked, legal once every order item is
// fully picked.
func (s Status) MarkPicked() (Status, error) {
	if s != StatusPicking {
		return 0, s.transitionError(StatusPicked)
	}
	return StatusPicked, nil
}

// ClaimForPacking transitions Picked -> Packing.
func (s Status) ClaimForPacking() (Status, error) {
	if s != StatusPicked {
		return 0, s.transitionError(StatusPacking)
	}
	return StatusPacking, nil
}

// MarkPacked transitions Packing -> Packed.
func (s Status) MarkPacked() (Status, error) {
	if s != StatusPacking {
		return 0, s.transitionError(StatusPacked)
	}
	return StatusPacked, nil
}

// Ship transitions Packed -> Shipped. Shipped is terminal.
func (s Status) Ship() (Status, error) {
	if s != StatusPacked {
		return 0, s.transitionError(StatusShipped)
	}
	return StatusShipped, nil
}

// Cancel transitions any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, s.transitionError(StatusCancelled)
	}
	return StatusCancelled, nil
}

// MarkBackordered transitions Pending -> Backorder, entered when the
// allocator cannot satisfy at least one item from any bin.
func (s Status) MarkBackordered() (Status, error) {
	if s != StatusPending {
		return 0, s.transitionError(StatusBackorder)
	}
	return StatusBackorder, nil
}

// ReleaseBackorder transitions Backorder -> Pending once inventory arrives.
func (s Status) ReleaseBackorder() (Status, error) {
	if s != StatusBackorder {
		return 0, s.transitionError(StatusPending)
	}
	return StatusPending, nil
}

func (s Status) transitionError(to Status) error {
	return errs.NewInvalidStateTransitionError("order", s.String(), to.String())
}
