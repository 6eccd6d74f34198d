package catalog

import (
	"time"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor identifies who is performing a catalog operation. Admins carry no
// restaurant and work on the global scope; chiefs and staff are bound to
// their own restaurant.
type Actor struct {
	UserID       uuid.UUID
	Role         string
	RestaurantID *uuid.UUID
}

// IsAdmin reports whether the actor works on the global scope
func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

// Scope returns the restaurant the actor writes into: nil for admins
// (global entries), the actor's restaurant otherwise.
func (a Actor) Scope() *uuid.UUID {
	if a.IsAdmin() {
		return nil
	}
	return a.RestaurantID
}

// CategoryInfo is the read model for category data
type CategoryInfo struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	Global       bool       `json:"global"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewCategoryInfo maps a category aggregate to its read model
func NewCategoryInfo(category *catalog.Category) CategoryInfo {
	return CategoryInfo{
		ID:           category.ID,
		Name:         category.Name,
		Type:         string(category.Type),
		RestaurantID: category.RestaurantID,
		Global:       category.IsGlobal(),
		CreatedAt:    category.CreatedAt,
	}
}

// CreateCategoryInput contains data for creating a category
type CreateCategoryInput struct {
	Actor Actor
	Name  string
	Type  string
}

// UpdateCategoryInput contains data for renaming a category
type UpdateCategoryInput struct {
	Actor      Actor
	CategoryID uuid.UUID
	Name       string
}

// ProductInfo is the read model for product data
type ProductInfo struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Unit         string     `json:"unit"`
	CategoryID   uuid.UUID  `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	Global       bool       `json:"global"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewProductInfo maps a product aggregate to its read model
func NewProductInfo(product *catalog.Product) ProductInfo {
	info := ProductInfo{
		ID:           product.ID,
		Name:         product.Name,
		Unit:         string(product.Unit),
		CategoryID:   product.CategoryID,
		RestaurantID: product.RestaurantID,
		Global:       product.IsGlobal(),
		CreatedAt:    product.CreatedAt,
	}
	if product.Category != nil {
		info.CategoryName = product.Category.Name
	}
	return info
}

// CreateProductInput contains data for creating a product
type CreateProductInput struct {
	Actor      Actor
	Name       string
	Unit       string
	CategoryID uuid.UUID
}

// UpdateProductInput contains data for updating a product
type UpdateProductInput struct {
	Actor      Actor
	ProductID  uuid.UUID
	Name       string
	Unit       string
	CategoryID uuid.UUID
}

// DeleteProductInput identifies a product to delete
type DeleteProductInput struct {
	Actor     Actor
	ProductID uuid.UUID
}

// IngredientInput describes one recipe line
type IngredientInput struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// IngredientInfo is the read model for a recipe line
type IngredientInfo struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// RecipeInfo is the read model for recipe data
type RecipeInfo struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Ingredients []IngredientInfo `json:"ingredients"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewRecipeInfo maps a recipe aggregate to its read model
func NewRecipeInfo(recipe *catalog.Recipe) RecipeInfo {
	ingredients := make([]IngredientInfo, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		info := IngredientInfo{
			ProductID: ing.ProductID,
			Quantity:  ing.Quantity,
		}
		if ing.Product != nil {
			info.ProductName = ing.Product.Name
			info.Unit = string(ing.Product.Unit)
		}
		ingredients[i] = info
	}
	return RecipeInfo{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Description: recipe.Description,
		Ingredients: ingredients,
		CreatedAt:   recipe.CreatedAt,
	}
}

// CreateRecipeInput contains data for creating a recipe
type CreateRecipeInput struct {
	RestaurantID uuid.UUID
	Name         string
	Description  string
	Ingredients  []IngredientInput
}

// UpdateRecipeInput contains data for updating a recipe and replacing its
// ingredient list
type UpdateRecipeInput struct {
	RestaurantID uuid.UUID
	RecipeID     uuid.UUID
	Name         string
	Description  string
	Ingredients  []IngredientInput
}

// PackagingInfo is the read model for packaging data
type PackagingInfo struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	EAN         *string         `json:"ean,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewPackagingInfo maps a packaging aggregate to its read model
func NewPackagingInfo(packaging *catalog.ProductPackaging) PackagingInfo {
	info := PackagingInfo{
		ID:        packaging.ID,
		Name:      packaging.Name,
		EAN:       packaging.EAN,
		Quantity:  packaging.Quantity,
		ProductID: packaging.ProductID,
		CreatedAt: packaging.CreatedAt,
	}
	if packaging.Product != nil {
		info.ProductName = packaging.Product.Name
		info.Unit = string(packaging.Product.Unit)
	}
	return info
}

// CreatePackagingInput contains data for registering a packaging
type CreatePackagingInput struct {
	Name      string
	EAN       *string
	Quantity  decimal.Decimal
	ProductID uuid.UUID
}

// UpdatePackagingInput contains data for updating a packaging
type UpdatePackagingInput struct {
	PackagingID uuid.UUID
	Name        string
	EAN         *string
	Quantity    decimal.Decimal
}
