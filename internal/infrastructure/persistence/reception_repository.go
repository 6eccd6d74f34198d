package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReceptionRepository implements inventory.ReceptionRepository using GORM
type GormReceptionRepository struct {
	db *gorm.DB
}

// NewGormReceptionRepository creates a new GormReceptionRepository
func NewGormReceptionRepository(db *gorm.DB) *GormReceptionRepository {
	return &GormReceptionRepository{db: db}
}

// CreateSession persists a new inventory session
func (r *GormReceptionRepository) CreateSession(ctx context.Context, session *inventory.InventorySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// CreateLog persists a new reception log entry
func (r *GormReceptionRepository) CreateLog(ctx context.Context, log *inventory.ReceptionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindLogsForRestaurant lists reception entries newest first, with packaging
// and product preloaded
func (r *GormReceptionRepository) FindLogsForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]inventory.ReceptionLog, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).
		Model(&inventory.ReceptionLog{}).
		Where("restaurant_id = ?", restaurantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []inventory.ReceptionLog
	if err := query.
		Preload("ProductPackaging").
		Preload("ProductPackaging.Product").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Ensure GormReceptionRepository implements ReceptionRepository
var _ inventory.ReceptionRepository = (*GormReceptionRepository)(nil)
