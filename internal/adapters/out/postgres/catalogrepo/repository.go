package catalogrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormSKURepository implements SKURepository using GORM.
type GormSKURepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSKURepository creates a new GORM SKU repository.
func NewGormSKURepository(db *gorm.DB, tracker aggregateTracker) *GormSKURepository {
	return &GormSKURepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new SKU to the database.
func (r *GormSKURepository) Add(ctx context.Context, sku *catalog.SKU) error {
	if err := sku.Validate(); err != nil {
		return err
	}

	dto := skuFromDomain(sku)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(sku.ID(), sku)
	return nil
}

// Update saves an existing SKU to the database.
func (r *GormSKURepository) Update(ctx context.Context, sku *catalog.SKU) error {
	if err := sku.Validate(); err != nil {
		return err
	}

	dto := skuFromDomain(sku)
	result := r.db.WithContext(ctx).
		Model(&SKUDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":     dto.Name,
			"category": dto.Category,
			"active":   dto.Active,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(sku.ID(), sku)
	return nil
}

// Get retrieves a SKU by ID.
func (r *GormSKURepository) Get(ctx context.Context, id kernel.UUID) (*catalog.SKU, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SKUDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", id.String())
		}
		return nil, err
	}

	return skuToDomain(dto)
}

// GetByCode retrieves a SKU by its unique human-readable code.
func (r *GormSKURepository) GetByCode(ctx context.Context, code string) (*catalog.SKU, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto SKUDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", code)
		}
		return nil, err
	}

	return skuToDomain(dto)
}

// GormBinLocationRepository implements BinLocationRepository using GORM.
type GormBinLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormBinLocationRepository creates a new GORM bin location repository.
func NewGormBinLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormBinLocationRepository {
	return &GormBinLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bin location to the database.
func (r *GormBinLocationRepository) Add(ctx context.Context, location *catalog.BinLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := binLocationFromDomain(location)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(location.ID(), location)
	return nil
}

// Get retrieves a bin location by its slot code.
func (r *GormBinLocationRepository) Get(
	ctx context.Context,
	code kernel.BinCode,
) (*catalog.BinLocation, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto BinLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bin location", code.String())
		}
		return nil, err
	}

	return binLocationToDomain(dto)
}
