package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements identity.RestaurantRepository using GORM
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GormRestaurantRepository
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Create creates a new restaurant
func (r *GormRestaurantRepository) Create(ctx context.Context, restaurant *identity.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

// Update updates an existing restaurant
func (r *GormRestaurantRepository) Update(ctx context.Context, restaurant *identity.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// Delete deletes a restaurant by ID
func (r *GormRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Restaurant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a restaurant by ID
func (r *GormRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Restaurant, error) {
	var restaurant identity.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindByName finds a restaurant by exact name
func (r *GormRestaurantRepository) FindByName(ctx context.Context, name string) (*identity.Restaurant, error) {
	var restaurant identity.Restaurant
	if err := r.db.WithContext(ctx).
		Where("name = ?", strings.TrimSpace(name)).
		First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindAll returns all restaurants with pagination
func (r *GormRestaurantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Restaurant, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).Model(&identity.Restaurant{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []identity.Restaurant
	if err := query.
		Order(filter.OrderBy + " " + strings.ToUpper(filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// ExistsByName checks if a restaurant name is already taken
func (r *GormRestaurantRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Restaurant{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormRestaurantRepository implements RestaurantRepository
var _ identity.RestaurantRepository = (*GormRestaurantRepository)(nil)
