package inventory

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InventorySession groups the reception log entries created by one
// reception call into an auditable unit.
type InventorySession struct {
	shared.TenantAggregateRoot
}

// TableName returns the table name for GORM
func (InventorySession) TableName() string {
	return "inventory_sessions"
}

// NewInventorySession opens a session for a restaurant
func NewInventorySession(restaurantID uuid.UUID) *InventorySession {
	return &InventorySession{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
	}
}

// ReceptionLog is the append-only record of one received packaging
// count. Replaying a reception appends a new entry; entries are never
// updated or deleted.
type ReceptionLog struct {
	shared.TenantAggregateRoot
	ProductPackagingID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	ProductPackaging   *catalog.ProductPackaging `gorm:"foreignKey:ProductPackagingID"`
	QuantityReceived   int                       `gorm:"not null"`
	InventorySessionID uuid.UUID                 `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ReceptionLog) TableName() string {
	return "reception_logs"
}

// NewReceptionLog records quantityReceived packaging units arriving
func NewReceptionLog(restaurantID, packagingID, sessionID uuid.UUID, quantityReceived int) (*ReceptionLog, error) {
	if packagingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PACKAGING", "Reception packaging is required")
	}
	if sessionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SESSION", "Reception session is required")
	}
	if quantityReceived <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received unit count must be positive")
	}

	return &ReceptionLog{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		ProductPackagingID:  packagingID,
		QuantityReceived:    quantityReceived,
		InventorySessionID:  sessionID,
	}, nil
}
