package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStockRepository implements inventory.StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Create creates a new stock row
func (r *GormStockRepository) Create(ctx context.Context, stock *inventory.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

// Update updates an existing stock row
func (r *GormStockRepository) Update(ctx context.Context, stock *inventory.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// FindByID loads a stock row with its product
func (r *GormStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindByProduct loads the stock row for a restaurant-product pair
func (r *GormStockRepository) FindByProduct(ctx context.Context, restaurantID, productID uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("restaurant_id = ? AND product_id = ?", restaurantID, productID).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindAllForRestaurant loads every stock row of one restaurant with products preloaded
func (r *GormStockRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// CountByRestaurant reports how many stock rows reference a restaurant
func (r *GormStockRepository) CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Decrement applies an atomic conditional decrement. The WHERE clause
// guards the quantity check, so a concurrent decrement can never drive the
// row negative. A zero RowsAffected means the row is missing or holds less
// than amount.
func (r *GormStockRepository) Decrement(ctx context.Context, restaurantID, productID uuid.UUID, amount decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("restaurant_id = ? AND product_id = ? AND quantity >= ?", restaurantID, productID, amount).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", amount),
			"version":    gorm.Expr("version + 1"),
			"updated_at": gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Increment atomically adds amount to an existing row, returning false
// when the row does not exist
func (r *GormStockRepository) Increment(ctx context.Context, restaurantID, productID uuid.UUID, amount decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("restaurant_id = ? AND product_id = ?", restaurantID, productID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", amount),
			"version":    gorm.Expr("version + 1"),
			"updated_at": gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
