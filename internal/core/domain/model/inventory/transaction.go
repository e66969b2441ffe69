package inventory

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance
	// was not created through NewTransaction or RestoreTransaction.
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")
)

// TransactionType classifies a single inventory movement.
type TransactionType int

const (
	// TransactionTypeUnknown represents an invalid or undefined type.
	TransactionTypeUnknown TransactionType = iota
	// TransactionTypeReservation commits available stock to an order.
	TransactionTypeReservation
	// TransactionTypeDeduction physically removes stock, consuming a reservation.
	TransactionTypeDeduction
	// TransactionTypeCancellation abandons a reservation; stock stays on hand.
	TransactionTypeCancellation
	// TransactionTypeAdjustment is an administrative correction (cycle count).
	TransactionTypeAdjustment
	// TransactionTypeReceipt records newly received stock.
	TransactionTypeReceipt
)

func getTransactionTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TransactionTypeUnknown:      "Unknown",
		TransactionTypeReservation:  "Reservation",
		TransactionTypeDeduction:    "Deduction",
		TransactionTypeCancellation: "Cancellation",
		TransactionTypeAdjustment:   "Adjustment",
		TransactionTypeReceipt:      "Receipt",
	}
}

// String returns the human-readable name of the transaction type.
func (t TransactionType) String() string {
	if s, ok := getTransactionTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks if the TransactionType is one of the defined values.
func (t TransactionType) Validate() error {
	if t <= TransactionTypeUnknown || t > TransactionTypeReceipt {
		return errs.NewValueIsInvalidErrorWithCause("transaction type",
			fmt.Errorf("%d is not a valid transaction type", t))
	}
	return nil
}

// Transaction is the append-only audit record of a single inventory movement.
// Exactly one Transaction is written in the same database transaction as the
// unit mutation it describes; it is never updated or deleted afterwards.
//
// QuantityDelta is signed: negative for deductions, positive for receipts and
// upward adjustments, and carries the reservation semantics for reservation
// and cancellation records (positive = reserved, negative = released).
type Transaction struct {
	id              kernel.UUID
	transactionType TransactionType
	skuID           kernel.UUID
	binCode         kernel.BinCode
	quantityDelta   int
	orderID         *kernel.UUID
	actorID         kernel.UUID
	reason          string
	occurredAt      time.Time

	isConstructed bool
}

// NewTransaction creates an audit record for an inventory movement occurring
// now. The orderID is nil for movements not tied to an order (receipts,
// adjustments).
func NewTransaction(
	id kernel.UUID,
	transactionType TransactionType,
	skuID kernel.UUID,
	binCode kernel.BinCode,
	quantityDelta int,
	orderID *kernel.UUID,
	actorID kernel.UUID,
	reason string,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		transactionType.Validate(),
		skuID.Validate(),
		binCode.Validate(),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}
	if quantityDelta == 0 {
		return nil, errs.NewValueIsRequiredError("quantityDelta")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Transaction{
		id:              id,
		transactionType: transactionType,
		skuID:           skuID,
		binCode:         binCode,
		quantityDelta:   quantityDelta,
		orderID:         orderID,
		actorID:         actorID,
		reason:          reason,
		occurredAt:      time.Now().UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreTransaction reconstructs a transaction from persistence.
func RestoreTransaction(
	id kernel.UUID,
	transactionType TransactionType,
	skuID kernel.UUID,
	binCode kernel.BinCode,
	quantityDelta int,
	orderID *kernel.UUID,
	actorID kernel.UUID,
	reason string,
	occurredAt time.Time,
) (*Transaction, error) {
	tx, err := NewTransaction(id, transactionType, skuID, binCode, quantityDelta, orderID, actorID, reason)
	if err != nil {
		return nil, err
	}
	tx.occurredAt = occurredAt
	return tx, nil
}

// Validate ensures the transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// Type returns the movement classification.
func (t *Transaction) Type() TransactionType {
	return t.transactionType
}

// SKUID returns the identifier of the moved SKU.
func (t *Transaction) SKUID() kernel.UUID {
	return t.skuID
}

// BinCode returns the slot code of the affected bin.
func (t *Transaction) BinCode() kernel.BinCode {
	return t.binCode
}

// QuantityDelta returns the signed quantity change.
func (t *Transaction) QuantityDelta() int {
	return t.quantityDelta
}

// OrderID returns the originating order, or nil for administrative movements.
func (t *Transaction) OrderID() *kernel.UUID {
	return t.orderID
}

// ActorID returns the operator who triggered the movement.
func (t *Transaction) ActorID() kernel.UUID {
	return t.actorID
}

// Reason returns the free-text justification.
func (t *Transaction) Reason() string {
	return t.reason
}

// OccurredAt returns when the movement happened.
func (t *Transaction) OccurredAt() time.Time {
	return t.occurredAt
}
