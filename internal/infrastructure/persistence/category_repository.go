package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create creates a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing category
func (r *GormCategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete deletes a category by ID
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindVisible returns global categories plus the restaurant's own
func (r *GormCategoryRepository) FindVisible(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.Category, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).
		Model(&catalog.Category{}).
		Where("restaurant_id IS NULL OR restaurant_id = ?", restaurantID)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []catalog.Category
	if err := query.
		Order(filter.OrderBy + " " + strings.ToUpper(filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// ExistsInScope checks the (name, restaurant, type) uniqueness rule
func (r *GormCategoryRepository) ExistsInScope(ctx context.Context, name string, restaurantID *uuid.UUID, categoryType catalog.CategoryType) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.Category{}).
		Where("LOWER(name) = ? AND type = ?", strings.ToLower(strings.TrimSpace(name)), categoryType)
	if restaurantID == nil {
		query = query.Where("restaurant_id IS NULL")
	} else {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
