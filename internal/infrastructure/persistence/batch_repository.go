package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBatchRepository implements inventory.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Create persists a batch with its items
func (r *GormBatchRepository) Create(ctx context.Context, batch *inventory.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

// FindByID loads a batch with items and their recipes
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var batch inventory.Batch
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Recipe").
		First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindAllForRestaurant returns a restaurant's batches newest first
func (r *GormBatchRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]inventory.Batch, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).
		Model(&inventory.Batch{}).
		Where("restaurant_id = ?", restaurantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var batches []inventory.Batch
	if err := query.
		Preload("Items").
		Preload("Items.Recipe").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&batches).Error; err != nil {
		return nil, 0, err
	}
	return batches, total, nil
}

// Ensure GormBatchRepository implements BatchRepository
var _ inventory.BatchRepository = (*GormBatchRepository)(nil)
