package catalog

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Unit is the unit of measure a product is counted in.
// Recipes, packagings and stock all express quantities in this unit.
type Unit string

const (
	UnitPiece      Unit = "unit"
	UnitGram       Unit = "g"
	UnitMilliliter Unit = "mL"
)

// ParseUnit validates and returns a Unit
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitPiece, UnitGram, UnitMilliliter:
		return Unit(s), nil
	default:
		return "", shared.NewDomainError("INVALID_UNIT", "Unit must be unit, g or mL")
	}
}

// Product is a base ingredient or supply item. A product with no
// restaurant is global; (name, restaurant) is unique per scope.
type Product struct {
	shared.ScopedAggregateRoot
	Name       string    `gorm:"type:varchar(100);not null"`
	Unit       Unit      `gorm:"type:varchar(10);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product owned by one restaurant
func NewProduct(restaurantID uuid.UUID, name string, unit Unit, categoryID uuid.UUID) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}

	return &Product{
		ScopedAggregateRoot: shared.NewScopedAggregateRoot(restaurantID),
		Name:                strings.TrimSpace(name),
		Unit:                unit,
		CategoryID:          categoryID,
	}, nil
}

// NewGlobalProduct creates a product shared by all restaurants
func NewGlobalProduct(name string, unit Unit, categoryID uuid.UUID) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}

	return &Product{
		ScopedAggregateRoot: shared.NewGlobalAggregateRoot(),
		Name:                strings.TrimSpace(name),
		Unit:                unit,
		CategoryID:          categoryID,
	}, nil
}

// Update changes the product's name, unit and category
func (p *Product) Update(name string, unit Unit, categoryID uuid.UUID) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}

	p.Name = strings.TrimSpace(name)
	p.Unit = unit
	p.CategoryID = categoryID
	p.Touch()
	p.IncrementVersion()
	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 100 characters")
	}
	return nil
}
