package inventoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory unit to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, unit *inventory.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	dto := fromDomain(unit)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(unit.ID(), unit)
	return nil
}

// Update saves an existing inventory unit to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, unit *inventory.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	dto := fromDomain(unit)
	result := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"quantity": dto.Quantity,
			"reserved": dto.Reserved,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(unit.ID(), unit)
	return nil
}

// Get retrieves the inventory unit for a SKU in a specific bin.
func (r *GormInventoryRepository) Get(
	ctx context.Context,
	skuID kernel.UUID,
	binCode kernel.BinCode,
) (*inventory.Unit, error) {
	return r.get(ctx, skuID, binCode, false)
}

// GetForUpdate retrieves the inventory unit for a SKU in a specific bin,
// locking its row until the surrounding transaction ends.
func (r *GormInventoryRepository) GetForUpdate(
	ctx context.Context,
	skuID kernel.UUID,
	binCode kernel.BinCode,
) (*inventory.Unit, error) {
	return r.get(ctx, skuID, binCode, true)
}

func (r *GormInventoryRepository) get(
	ctx context.Context,
	skuID kernel.UUID,
	binCode kernel.BinCode,
	lock bool,
) (*inventory.Unit, error) {
	if err := errors.Join(skuID.Validate(), binCode.Validate()); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto UnitDTO
	err := db.First(&dto, "sku_id = ? AND bin_code = ?", skuID.Bytes(), binCode.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory unit", skuID.String()+"@"+binCode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySKU retrieves every inventory unit holding any of the given SKUs
// without locking, sorted by bin code ascending. Used for availability
// checks that leave the units untouched.
func (r *GormInventoryRepository) GetBySKU(
	ctx context.Context,
	skuIDs []kernel.UUID,
) ([]*inventory.Unit, error) {
	return r.listBySKU(ctx, skuIDs, false)
}

// GetBySKUForUpdate retrieves and locks every inventory unit holding any of
// the given SKUs. Rows come back sorted by bin code ascending, which keeps
// the lock acquisition order deterministic across concurrent claims.
func (r *GormInventoryRepository) GetBySKUForUpdate(
	ctx context.Context,
	skuIDs []kernel.UUID,
) ([]*inventory.Unit, error) {
	return r.listBySKU(ctx, skuIDs, true)
}

func (r *GormInventoryRepository) listBySKU(
	ctx context.Context,
	skuIDs []kernel.UUID,
	lock bool,
) ([]*inventory.Unit, error) {
	if len(skuIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("skuIDs")
	}

	ids := make([]uuid.UUID, 0, len(skuIDs))
	for _, skuID := range skuIDs {
		if err := skuID.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, skuID.Bytes())
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dtos []UnitDTO
	err := db.
		Where("sku_id IN ?", ids).
		Order("bin_code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	units := make([]*inventory.Unit, 0, len(dtos))
	for _, dto := range dtos {
		unit, unitErr := toDomain(dto)
		if unitErr != nil {
			return nil, unitErr
		}
		units = append(units, unit)
	}

	return units, nil
}
