package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// TenantAggregateRoot extends BaseAggregateRoot with restaurant scoping.
// RestaurantID is the owning tenant.
type TenantAggregateRoot struct {
	BaseAggregateRoot
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewTenantAggregateRoot creates a new restaurant-scoped aggregate root
func NewTenantAggregateRoot(restaurantID uuid.UUID) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		RestaurantID:      restaurantID,
	}
}

// ScopedAggregateRoot is an aggregate that is either owned by one restaurant
// or shared globally (RestaurantID = nil). Catalog entities use this shape.
type ScopedAggregateRoot struct {
	BaseAggregateRoot
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
}

// NewGlobalAggregateRoot creates an aggregate visible to every restaurant
func NewGlobalAggregateRoot() ScopedAggregateRoot {
	return ScopedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
	}
}

// NewScopedAggregateRoot creates an aggregate owned by a single restaurant
func NewScopedAggregateRoot(restaurantID uuid.UUID) ScopedAggregateRoot {
	return ScopedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		RestaurantID:      &restaurantID,
	}
}

// IsGlobal reports whether the aggregate is shared across all restaurants
func (s *ScopedAggregateRoot) IsGlobal() bool {
	return s.RestaurantID == nil
}

// OwnedBy reports whether the aggregate belongs to the given restaurant.
// Global aggregates are visible to every restaurant but owned by none.
func (s *ScopedAggregateRoot) OwnedBy(restaurantID uuid.UUID) bool {
	return s.RestaurantID != nil && *s.RestaurantID == restaurantID
}
