package identity

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
)

// Restaurant is the tenant of the system. Every catalog and inventory
// record is either owned by one restaurant or shared globally.
type Restaurant struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Restaurant) TableName() string {
	return "restaurants"
}

// NewRestaurant creates a new restaurant
func NewRestaurant(name string) (*Restaurant, error) {
	if err := validateRestaurantName(name); err != nil {
		return nil, err
	}

	return &Restaurant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}, nil
}

// Rename updates the restaurant name
func (r *Restaurant) Rename(name string) error {
	if err := validateRestaurantName(name); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(name)
	r.Touch()
	r.IncrementVersion()
	return nil
}

func validateRestaurantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Restaurant name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Restaurant name cannot exceed 100 characters")
	}
	return nil
}
