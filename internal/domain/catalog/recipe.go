package catalog

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe lists the product quantities one production run consumes.
// Recipes always belong to exactly one restaurant.
type Recipe struct {
	shared.TenantAggregateRoot
	Name        string             `gorm:"type:varchar(100);not null"`
	Description string             `gorm:"type:text"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient binds one product and its quantity to a recipe.
// Quantity is expressed in the product's unit of measure.
type RecipeIngredient struct {
	shared.BaseEntity
	RecipeID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_product,priority:1"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_product,priority:2"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,3);not null"`
}

// TableName returns the table name for GORM
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// IngredientInput is the value used to build or replace a recipe's
// ingredient list
type IngredientInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// NewRecipe creates a recipe with its ingredient list
func NewRecipe(restaurantID uuid.UUID, name, description string, ingredients []IngredientInput) (*Recipe, error) {
	if err := validateRecipeName(name); err != nil {
		return nil, err
	}

	recipe := &Recipe{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		Name:                strings.TrimSpace(name),
		Description:         strings.TrimSpace(description),
	}

	if err := recipe.ReplaceIngredients(ingredients); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Update changes name and description
func (r *Recipe) Update(name, description string) error {
	if err := validateRecipeName(name); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(name)
	r.Description = strings.TrimSpace(description)
	r.Touch()
	r.IncrementVersion()
	return nil
}

// ReplaceIngredients swaps the whole ingredient list. Each product may
// appear once and every quantity must be positive.
func (r *Recipe) ReplaceIngredients(inputs []IngredientInput) error {
	if len(inputs) == 0 {
		return shared.NewDomainError("INVALID_INGREDIENTS", "Recipe must have at least one ingredient")
	}

	seen := make(map[uuid.UUID]bool, len(inputs))
	ingredients := make([]RecipeIngredient, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_INGREDIENTS", "Ingredient product is required")
		}
		if seen[in.ProductID] {
			return shared.NewDomainError("INVALID_INGREDIENTS", "A product may appear only once per recipe")
		}
		if !in.Quantity.IsPositive() {
			return shared.NewDomainError("INVALID_INGREDIENTS", "Ingredient quantity must be positive")
		}
		seen[in.ProductID] = true
		ingredients = append(ingredients, RecipeIngredient{
			BaseEntity: shared.NewBaseEntity(),
			RecipeID:   r.ID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
		})
	}

	r.Ingredients = ingredients
	r.Touch()
	r.IncrementVersion()
	return nil
}

func validateRecipeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Recipe name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Recipe name cannot exceed 100 characters")
	}
	return nil
}
