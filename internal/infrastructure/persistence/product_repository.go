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

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update updates an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a product by ID with its category preloaded
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindVisible returns global products plus the restaurant's own
func (r *GormProductRepository) FindVisible(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("restaurant_id IS NULL OR restaurant_id = ?", restaurantID)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	if err := query.
		Preload("Category").
		Order(filter.OrderBy + " " + strings.ToUpper(filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// SearchVisible matches product names case-insensitively within the visible scope
func (r *GormProductRepository) SearchVisible(ctx context.Context, restaurantID uuid.UUID, query string, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("restaurant_id IS NULL OR restaurant_id = ?", restaurantID).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsInScope checks the (name, restaurant) uniqueness rule
func (r *GormProductRepository) ExistsInScope(ctx context.Context, name string, restaurantID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
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

// CountReferences returns how many recipe ingredients and stock rows point at the product
func (r *GormProductRepository) CountReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	var ingredientCount int64
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Where("product_id = ?", productID).
		Count(&ingredientCount).Error; err != nil {
		return 0, err
	}

	var stockCount int64
	if err := r.db.WithContext(ctx).
		Table("stocks").
		Where("product_id = ?", productID).
		Count(&stockCount).Error; err != nil {
		return 0, err
	}

	return ingredientCount + stockCount, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
