package inventory

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock is the on-hand quantity of one product at one restaurant.
// There is exactly one row per (product, restaurant); receptions
// increment it and batch launches decrement it.
type Stock struct {
	shared.TenantAggregateRoot
	ProductID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_restaurant,priority:1"`
	Product        *catalog.Product `gorm:"foreignKey:ProductID"`
	Quantity       decimal.Decimal  `gorm:"type:numeric(14,3);not null;default:0"`
	AlertThreshold decimal.Decimal  `gorm:"type:numeric(14,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates a stock row with an initial quantity and the default
// alert threshold. Rows auto-created by a reception start this way.
func NewStock(restaurantID, productID uuid.UUID, quantity decimal.Decimal) (*Stock, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Stock product is required")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}

	return &Stock{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		ProductID:           productID,
		Quantity:            quantity,
		AlertThreshold:      decimal.Zero,
	}, nil
}

// SetAlertThreshold updates the low-stock alert level
func (s *Stock) SetAlertThreshold(threshold decimal.Decimal) error {
	if threshold.IsNegative() {
		return shared.NewDomainError("INVALID_THRESHOLD", "Alert threshold cannot be negative")
	}
	s.AlertThreshold = threshold
	s.Touch()
	s.IncrementVersion()
	return nil
}

// CanFulfill reports whether the row holds at least the needed quantity
func (s *Stock) CanFulfill(needed decimal.Decimal) bool {
	return s.Quantity.GreaterThanOrEqual(needed)
}

// Shortfall returns how much is missing to fulfill the needed quantity,
// zero when the stock suffices
func (s *Stock) Shortfall(needed decimal.Decimal) decimal.Decimal {
	if s.CanFulfill(needed) {
		return decimal.Zero
	}
	return needed.Sub(s.Quantity)
}

// IsBelowThreshold reports whether the quantity fell under the alert level
func (s *Stock) IsBelowThreshold() bool {
	return s.Quantity.LessThan(s.AlertThreshold)
}
