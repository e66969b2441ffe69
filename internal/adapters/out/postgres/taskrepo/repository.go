package taskrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picktask"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickTaskRepository implements PickTaskRepository using GORM.
type GormPickTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickTaskRepository creates a new GORM pick task repository.
func NewGormPickTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormPickTaskRepository {
	return &GormPickTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pick task to the database.
func (r *GormPickTaskRepository) Add(ctx context.Context, task *picktask.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(task.ID(), task)
	return nil
}

// Update saves an existing pick task to the database.
func (r *GormPickTaskRepository) Update(ctx context.Context, task *picktask.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"picked_quantity": dto.PickedQuantity,
			"status":          dto.Status,
			"started_at":      dto.StartedAt,
			"completed_at":    dto.CompletedAt,
			"skipped_at":      dto.SkippedAt,
			"skip_reason":     dto.SkipReason,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(task.ID(), task)
	return nil
}

// Get retrieves a pick task by ID.
func (r *GormPickTaskRepository) Get(ctx context.Context, id kernel.UUID) (*picktask.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all pick tasks for an order, sorted by bin code so
// they follow the picking route.
func (r *GormPickTaskRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*picktask.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Order("bin_code").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*picktask.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, taskErr := toDomain(dto)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
