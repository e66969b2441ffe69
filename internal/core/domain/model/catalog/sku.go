package catalog

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSKUIsNotConstructed is returned when a SKU instance was not created
	// through the NewSKU constructor or RestoreSKU.
	ErrSKUIsNotConstructed = errors.New("SKU must be created via NewSKU constructor")
)

// SKU represents a catalog entry: the identity of one kind of stocked good.
//
// The code is the unique business key and never changes; name and category are
// descriptive and mutable. An inactive SKU is kept for referential integrity
// but is not eligible for new orders.
type SKU struct {
	id       kernel.UUID
	code     string
	name     string
	category string
	active   bool

	isConstructed bool
}

// NewSKU creates a SKU with the given code, name, and category.
// The SKU starts active. Code and name are required.
func NewSKU(id kernel.UUID, code, name, category string) (*SKU, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &SKU{
		id:            id,
		code:          code,
		name:          name,
		category:      category,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreSKU reconstructs a SKU from persistence.
func RestoreSKU(id kernel.UUID, code, name, category string, active bool) (*SKU, error) {
	sku, err := NewSKU(id, code, name, category)
	if err != nil {
		return nil, err
	}
	sku.active = active
	return sku, nil
}

// Validate ensures the SKU was created through a constructor.
func (s *SKU) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSKUIsNotConstructed
	}
	return nil
}

// ID returns the SKU's unique identifier.
func (s *SKU) ID() kernel.UUID {
	return s.id
}

// Code returns the unique business key.
func (s *SKU) Code() string {
	return s.code
}

// Name returns the descriptive name.
func (s *SKU) Name() string {
	return s.name
}

// Category returns the catalog category.
func (s *SKU) Category() string {
	return s.category
}

// IsActive reports whether the SKU is eligible for new orders.
func (s *SKU) IsActive() bool {
	return s.active
}

// Rename updates the descriptive name. The name is required.
func (s *SKU) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

// Deactivate removes the SKU from eligibility for new orders.
// Existing inventory and order references remain valid.
func (s *SKU) Deactivate() {
	s.active = false
}

// Activate restores the SKU's eligibility for new orders.
func (s *SKU) Activate() {
	s.active = true
}
