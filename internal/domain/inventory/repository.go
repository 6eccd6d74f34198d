package inventory

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockRepository defines the interface for stock persistence
type StockRepository interface {
	Create(ctx context.Context, stock *Stock) error
	Update(ctx context.Context, stock *Stock) error

	// FindByID loads a stock row with its product
	FindByID(ctx context.Context, id uuid.UUID) (*Stock, error)
	FindByProduct(ctx context.Context, restaurantID, productID uuid.UUID) (*Stock, error)

	// FindAllForRestaurant loads every stock row of one restaurant with
	// products preloaded
	FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Stock, error)

	// CountByRestaurant reports how many stock rows reference a restaurant
	CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error)

	// Decrement applies an atomic conditional decrement:
	//   UPDATE stocks SET quantity = quantity - amount
	//   WHERE restaurant_id = ? AND product_id = ? AND quantity >= amount
	// It returns false when no row qualified, i.e. the row is missing or
	// holds less than amount.
	Decrement(ctx context.Context, restaurantID, productID uuid.UUID, amount decimal.Decimal) (bool, error)

	// Increment atomically adds amount to an existing row, returning
	// false when the row does not exist
	Increment(ctx context.Context, restaurantID, productID uuid.UUID, amount decimal.Decimal) (bool, error)
}

// BatchRepository defines the interface for batch persistence
type BatchRepository interface {
	// Create persists a batch with its items
	Create(ctx context.Context, batch *Batch) error

	// FindByID loads a batch with items and their recipes
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]Batch, int64, error)
}

// ReceptionRepository defines the interface for reception audit persistence
type ReceptionRepository interface {
	CreateSession(ctx context.Context, session *InventorySession) error
	CreateLog(ctx context.Context, log *ReceptionLog) error

	// FindLogsForRestaurant lists reception entries newest first, with
	// packaging and product preloaded
	FindLogsForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]ReceptionLog, int64, error)
}
