package catalog

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrBinLocationIsNotConstructed is returned when a BinLocation instance
	// was not created through the NewBinLocation constructor or RestoreBinLocation.
	ErrBinLocationIsNotConstructed = errors.New("BinLocation must be created via NewBinLocation constructor")
)

// LocationType classifies the physical form of a storage slot.
type LocationType int

const (
	// LocationTypeUnknown represents an invalid or undefined location type.
	LocationTypeUnknown LocationType = iota
	// LocationTypeShelf is a standard picking shelf.
	LocationTypeShelf
	// LocationTypeFloor is ground-level bulk storage.
	LocationTypeFloor
	// LocationTypeRack is a pallet rack position.
	LocationTypeRack
	// LocationTypeBin is a small-parts bin.
	LocationTypeBin
)

func getLocationTypeStrings() map[LocationType]string {
	return map[LocationType]string{
		LocationTypeUnknown: "Unknown",
		LocationTypeShelf:   "Shelf",
		LocationTypeFloor:   "Floor",
		LocationTypeRack:    "Rack",
		LocationTypeBin:     "Bin",
	}
}

// String returns the human-readable name of the location type.
func (t LocationType) String() string {
	if s, ok := getLocationTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks if the LocationType is one of the defined values.
func (t LocationType) Validate() error {
	if t <= LocationTypeUnknown || t > LocationTypeBin {
		return errs.NewValueIsInvalidErrorWithCause("location type",
			fmt.Errorf("%d is not a valid location type", t))
	}
	return nil
}

// BinLocation represents a physical storage slot, identified by its
// zone-aisle-shelf code. Inactive locations hold no new stock but remain
// addressable for existing inventory.
type BinLocation struct {
	id           kernel.UUID
	code         kernel.BinCode
	locationType LocationType
	active       bool

	isConstructed bool
}

// NewBinLocation creates an active BinLocation with the given slot code and type.
func NewBinLocation(id kernel.UUID, code kernel.BinCode, locationType LocationType) (*BinLocation, error) {
	if err := errors.Join(id.Validate(), code.Validate(), locationType.Validate()); err != nil {
		return nil, err
	}

	return &BinLocation{
		id:            id,
		code:          code,
		locationType:  locationType,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreBinLocation reconstructs a BinLocation from persistence.
func RestoreBinLocation(id kernel.UUID, code kernel.BinCode, locationType LocationType, active bool) (*BinLocation, error) {
	bin, err := NewBinLocation(id, code, locationType)
	if err != nil {
		return nil, err
	}
	bin.active = active
	return bin, nil
}

// Validate ensures the BinLocation was created through a constructor.
func (b *BinLocation) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBinLocationIsNotConstructed
	}
	return nil
}

// ID returns the location's unique identifier.
func (b *BinLocation) ID() kernel.UUID {
	return b.id
}

// Code returns the zone-aisle-shelf slot code.
func (b *BinLocation) Code() kernel.BinCode {
	return b.code
}

// Type returns the physical form of the slot.
func (b *BinLocation) Type() LocationType {
	return b.locationType
}

// IsActive reports whether the slot accepts new stock.
func (b *BinLocation) IsActive() bool {
	return b.active
}

// Deactivate stops the slot from accepting new stock.
func (b *BinLocation) Deactivate() {
	b.active = false
}

// Activate restores the slot for new stock.
func (b *BinLocation) Activate() {
	b.active = true
}
