package inventory

import (
	"time"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchItemInput is one requested (recipe, multiplicity) pair
type BatchItemInput struct {
	RecipeID uuid.UUID `json:"recipe_id"`
	Quantity int       `json:"quantity"`
}

// CreateBatchInput contains data for launching a production batch
type CreateBatchInput struct {
	RestaurantID uuid.UUID
	UserID       uuid.UUID
	Items        []BatchItemInput
}

// BatchItemInfo is the read model for one batch line
type BatchItemInfo struct {
	RecipeID   uuid.UUID `json:"recipe_id"`
	RecipeName string    `json:"recipe_name,omitempty"`
	Quantity   int       `json:"quantity"`
}

// BatchInfo is the read model for a production batch
type BatchInfo struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Items     []BatchItemInfo `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewBatchInfo maps a batch aggregate to its read model
func NewBatchInfo(batch *inventory.Batch) BatchInfo {
	items := make([]BatchItemInfo, len(batch.Items))
	for i, item := range batch.Items {
		info := BatchItemInfo{
			RecipeID: item.RecipeID,
			Quantity: item.Quantity,
		}
		if item.Recipe != nil {
			info.RecipeName = item.Recipe.Name
		}
		items[i] = info
	}
	return BatchInfo{
		ID:        batch.ID,
		UserID:    batch.UserID,
		Items:     items,
		CreatedAt: batch.CreatedAt,
	}
}

// ReceiveExistingInput records the arrival of a known packaging
type ReceiveExistingInput struct {
	RestaurantID     uuid.UUID
	PackagingID      uuid.UUID
	QuantityReceived int
}

// ReceiveNewInput registers a packaging and records its first arrival in
// one call
type ReceiveNewInput struct {
	RestaurantID     uuid.UUID
	Name             string
	EAN              *string
	Quantity         decimal.Decimal
	ProductID        uuid.UUID
	QuantityReceived int
}

// ReceptionInfo is the result of a processed reception
type ReceptionInfo struct {
	SessionID        uuid.UUID       `json:"session_id"`
	PackagingID      uuid.UUID       `json:"packaging_id"`
	PackagingName    string          `json:"packaging_name"`
	ProductID        uuid.UUID       `json:"product_id"`
	QuantityReceived int             `json:"quantity_received"`
	DeltaQuantity    decimal.Decimal `json:"delta_quantity"`
	StockQuantity    decimal.Decimal `json:"stock_quantity"`
}

// ReceptionLogInfo is the read model for one reception audit entry
type ReceptionLogInfo struct {
	ID               uuid.UUID       `json:"id"`
	SessionID        uuid.UUID       `json:"session_id"`
	PackagingID      uuid.UUID       `json:"packaging_id"`
	PackagingName    string          `json:"packaging_name,omitempty"`
	ProductName      string          `json:"product_name,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	QuantityReceived int             `json:"quantity_received"`
	DeltaQuantity    decimal.Decimal `json:"delta_quantity"`
	ReceivedAt       time.Time       `json:"received_at"`
}

// NewReceptionLogInfo maps a reception log entry to its read model
func NewReceptionLogInfo(log *inventory.ReceptionLog) ReceptionLogInfo {
	info := ReceptionLogInfo{
		ID:               log.ID,
		SessionID:        log.InventorySessionID,
		PackagingID:      log.ProductPackagingID,
		QuantityReceived: log.QuantityReceived,
		ReceivedAt:       log.CreatedAt,
	}
	if log.ProductPackaging != nil {
		info.PackagingName = log.ProductPackaging.Name
		info.DeltaQuantity = log.ProductPackaging.Quantity.Mul(decimal.NewFromInt(int64(log.QuantityReceived)))
		if log.ProductPackaging.Product != nil {
			info.ProductName = log.ProductPackaging.Product.Name
			info.Unit = string(log.ProductPackaging.Product.Unit)
		}
	}
	return info
}

// StockInfo is the read model for one stock row
type StockInfo struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
	BelowThreshold bool            `json:"below_threshold"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewStockInfo maps a stock aggregate to its read model
func NewStockInfo(stock *inventory.Stock) StockInfo {
	info := StockInfo{
		ID:             stock.ID,
		ProductID:      stock.ProductID,
		Quantity:       stock.Quantity,
		AlertThreshold: stock.AlertThreshold,
		BelowThreshold: stock.IsBelowThreshold(),
		UpdatedAt:      stock.UpdatedAt,
	}
	if stock.Product != nil {
		info.ProductName = stock.Product.Name
		info.Unit = string(stock.Product.Unit)
	}
	return info
}

// SetThresholdInput contains data for updating a stock alert level
type SetThresholdInput struct {
	RestaurantID   uuid.UUID
	StockID        uuid.UUID
	AlertThreshold decimal.Decimal
}
