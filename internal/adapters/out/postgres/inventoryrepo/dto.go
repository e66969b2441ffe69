// Package inventoryrepo persists inventory units, the per-SKU-per-bin stock
// records that back reservations and deductions.
package inventoryrepo

import (
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UnitDTO represents the database structure for one inventory unit. A SKU
// appears at most once per bin, enforced by the composite unique index.
type UnitDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKUID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_sku_bin"`
	BinCode  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_inventory_sku_bin"`
	Quantity int       `gorm:"type:int;not null"`
	Reserved int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for inventory units.
func (UnitDTO) TableName() string {
	return "inventory_units"
}

func fromDomain(unit *inventory.Unit) UnitDTO {
	return UnitDTO{
		ID:       unit.ID().Bytes(),
		SKUID:    unit.SKUID().Bytes(),
		BinCode:  unit.BinCode().String(),
		Quantity: unit.Quantity(),
		Reserved: unit.Reserved(),
	}
}

func toDomain(dto UnitDTO) (*inventory.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	skuID, err := kernel.UUIDFromBytes(dto.SKUID[:])
	if err != nil {
		return nil, err
	}
	binCode, err := kernel.ParseBinCode(dto.BinCode)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreUnit(id, skuID, binCode, dto.Quantity, dto.Reserved)
}
