package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientAvailability is the sentinel returned when a reservation
	// or deduction cannot be satisfied by the available quantity at a bin.
	ErrInsufficientAvailability = errors.New("insufficient availability")

	// ErrInvalidStateTransition is the sentinel returned when a lifecycle
	// transition guard fails.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAlreadyClaimed is the sentinel returned when an order has already
	// been claimed by another picker.
	ErrAlreadyClaimed = errors.New("order already claimed")

	// ErrCapacityExceeded is the sentinel returned when an operator is at
	// their concurrent order limit.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrOverPick is the sentinel returned when a reported picked quantity
	// exceeds the task's requested quantity.
	ErrOverPick = errors.New("picked quantity exceeds requested quantity")
)

// InsufficientAvailabilityError reports a reserve or deduct attempt that the
// bin's available quantity could not satisfy. The failing operation has no
// side effects.
type InsufficientAvailabilityError struct {
	SKUCode   string
	BinCode   string
	Requested int
	Available int
}

// NewInsufficientAvailabilityError creates an InsufficientAvailabilityError
// for the given SKU and bin.
func NewInsufficientAvailabilityError(skuCode, binCode string, requested, available int) *InsufficientAvailabilityError {
	return &InsufficientAvailabilityError{
		SKUCode:   skuCode,
		BinCode:   binCode,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("%s: requested %d of %s at %s, available %d",
		ErrInsufficientAvailability, e.Requested, sanitize(e.SKUCode), sanitize(e.BinCode), e.Available)
}

func (e *InsufficientAvailabilityError) Unwrap() error {
	return ErrInsufficientAvailability
}

// InvalidStateTransitionError reports a rejected lifecycle transition.
type InvalidStateTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the named entity and the attempted transition.
func NewInvalidStateTransitionError(entity, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrInvalidStateTransition, sanitize(e.Entity), sanitize(e.From), sanitize(e.To))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// AlreadyClaimedError reports a claim attempt on an order that is no longer
// in pending status.
type AlreadyClaimedError struct {
	OrderID string
	Status  string
}

// NewAlreadyClaimedError creates an AlreadyClaimedError for the given order.
func NewAlreadyClaimedError(orderID, status string) *AlreadyClaimedError {
	return &AlreadyClaimedError{OrderID: orderID, Status: status}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: order %s is in status %s", ErrAlreadyClaimed, e.OrderID, sanitize(e.Status))
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// CapacityExceededError reports an operator at their concurrent order limit.
type CapacityExceededError struct {
	OperatorID string
	InFlight   int
	Limit      int
}

// NewCapacityExceededError creates a CapacityExceededError for the given operator.
func NewCapacityExceededError(operatorID string, inFlight, limit int) *CapacityExceededError {
	return &CapacityExceededError{OperatorID: operatorID, InFlight: inFlight, Limit: limit}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: operator %s has %d orders in flight, limit is %d",
		ErrCapacityExceeded, e.OperatorID, e.InFlight, e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// OverPickError reports a completion attempt with a picked quantity above the
// task's requested quantity.
type OverPickError struct {
	TaskID    string
	Picked    int
	Requested int
}

// NewOverPickError creates an OverPickError for the given task.
func NewOverPickError(taskID string, picked, requested int) *OverPickError {
	return &OverPickError{TaskID: taskID, Picked: picked, Requested: requested}
}

func (e *OverPickError) Error() string {
	return fmt.Sprintf("%s: task %s requested %d, picked %d", ErrOverPick, e.TaskID, e.Requested, e.Picked)
}

func (e *OverPickError) Unwrap() error {
	return ErrOverPick
}
