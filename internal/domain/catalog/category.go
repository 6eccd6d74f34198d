package catalog

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryType separates edible products from supplies
type CategoryType string

const (
	CategoryTypeFood    CategoryType = "food"
	CategoryTypeNonFood CategoryType = "nonfood"
)

// ParseCategoryType validates and returns a CategoryType
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(s) {
	case CategoryTypeFood, CategoryTypeNonFood:
		return CategoryType(s), nil
	default:
		return "", shared.NewDomainError("INVALID_CATEGORY_TYPE", "Category type must be food or nonfood")
	}
}

// Category groups products. A category with no restaurant is global and
// visible to every tenant; (name, restaurant, type) is unique.
type Category struct {
	shared.ScopedAggregateRoot
	Name string       `gorm:"type:varchar(100);not null"`
	Type CategoryType `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category owned by one restaurant
func NewCategory(restaurantID uuid.UUID, name string, categoryType CategoryType) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		ScopedAggregateRoot: shared.NewScopedAggregateRoot(restaurantID),
		Name:                strings.TrimSpace(name),
		Type:                categoryType,
	}, nil
}

// NewGlobalCategory creates a category shared by all restaurants
func NewGlobalCategory(name string, categoryType CategoryType) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		ScopedAggregateRoot: shared.NewGlobalAggregateRoot(),
		Name:                strings.TrimSpace(name),
		Type:                categoryType,
	}, nil
}

// Rename updates the category name
func (c *Category) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Touch()
	c.IncrementVersion()
	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
