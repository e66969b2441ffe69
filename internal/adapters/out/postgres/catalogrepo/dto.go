// Package catalogrepo persists the warehouse catalog: SKUs and bin locations.
package catalogrepo

import (
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SKUDTO represents the database structure for one catalog SKU.
type SKUDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Category string    `gorm:"type:varchar(64);not null"`
	Active   bool      `gorm:"not null"`
}

// TableName specifies the database table name for SKUs.
func (SKUDTO) TableName() string {
	return "skus"
}

// BinLocationDTO represents the database structure for one bin location.
type BinLocationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	LocationType int       `gorm:"type:int;not null"`
	Active       bool      `gorm:"not null"`
}

// TableName specifies the database table name for bin locations.
func (BinLocationDTO) TableName() string {
	return "bin_locations"
}

func skuFromDomain(sku *catalog.SKU) SKUDTO {
	return SKUDTO{
		ID:       sku.ID().Bytes(),
		Code:     sku.Code(),
		Name:     sku.Name(),
		Category: sku.Category(),
		Active:   sku.IsActive(),
	}
}

func skuToDomain(dto SKUDTO) (*catalog.SKU, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreSKU(id, dto.Code, dto.Name, dto.Category, dto.Active)
}

func binLocationFromDomain(location *catalog.BinLocation) BinLocationDTO {
	return BinLocationDTO{
		ID:           location.ID().Bytes(),
		Code:         location.Code().String(),
		LocationType: int(location.Type()),
		Active:       location.IsActive(),
	}
}

func binLocationToDomain(dto BinLocationDTO) (*catalog.BinLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.ParseBinCode(dto.Code)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreBinLocation(id, code, catalog.LocationType(dto.LocationType), dto.Active)
}
