package inventory

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Batch records one production run. It is immutable once created; the
// stock decrements it caused live in the stock rows themselves.
type Batch struct {
	shared.TenantAggregateRoot
	UserID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Items  []BatchItem `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "batches"
}

// BatchItem is one (recipe, multiplicity) pair of a production run
type BatchItem struct {
	shared.BaseEntity
	BatchID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	RecipeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Recipe   *catalog.Recipe `gorm:"foreignKey:RecipeID"`
	Quantity int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BatchItem) TableName() string {
	return "batch_items"
}

// BatchItemInput is one requested (recipe, quantity) pair
type BatchItemInput struct {
	RecipeID uuid.UUID
	Quantity int
}

// NewBatch creates a production batch from the requested items. Items
// with a non-positive quantity are invalid; an empty list is rejected.
func NewBatch(restaurantID, userID uuid.UUID, items []BatchItemInput) (*Batch, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Batch user is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Batch must contain at least one recipe")
	}

	batch := &Batch{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		UserID:              userID,
	}

	for _, in := range items {
		if in.RecipeID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_REQUEST", "Batch item recipe is required")
		}
		if in.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_REQUEST", "Batch item quantity must be positive")
		}
		batch.Items = append(batch.Items, BatchItem{
			BaseEntity: shared.NewBaseEntity(),
			BatchID:    batch.ID,
			RecipeID:   in.RecipeID,
			Quantity:   in.Quantity,
		})
	}

	return batch, nil
}

// RecipeIDs returns the distinct recipe IDs of the batch, in item order
func (b *Batch) RecipeIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(b.Items))
	ids := make([]uuid.UUID, 0, len(b.Items))
	for _, item := range b.Items {
		if !seen[item.RecipeID] {
			seen[item.RecipeID] = true
			ids = append(ids, item.RecipeID)
		}
	}
	return ids
}
