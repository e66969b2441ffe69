package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picktask"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPickerTasksQueryIsNotConstructed = errors.New(
	"GetPickerTasksQuery must be created via NewGetPickerTasksQuery constructor",
)

// GetPickerTasksQuery retrieves a picker's open pick tasks ordered by bin
// code, which matches the walking route through the warehouse.
type GetPickerTasksQuery struct {
	pickerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickerTasksQuery creates a query for a picker's open tasks.
func NewGetPickerTasksQuery(pickerID kernel.UUID) (GetPickerTasksQuery, error) {
	if err := pickerID.Validate(); err != nil {
		return GetPickerTasksQuery{}, err
	}

	return GetPickerTasksQuery{
		pickerID: pickerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickerTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPickerTasksQueryIsNotConstructed)
}

// PickerID returns the queried picker.
func (q GetPickerTasksQuery) PickerID() kernel.UUID {
	return q.pickerID
}

// PickerTaskResponse is one open task on a picker's list.
type PickerTaskResponse struct {
	ID       kernel.UUID
	OrderID  kernel.UUID
	SKUCode  string
	BinCode  string
	Quantity int
	Status   picktask.Status
}
