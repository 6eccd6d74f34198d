package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindVisible returns global categories plus the restaurant's own
	FindVisible(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]Category, int64, error)

	// ExistsInScope checks the (name, restaurant, type) uniqueness rule;
	// restaurantID nil targets the global scope
	ExistsInScope(ctx context.Context, name string, restaurantID *uuid.UUID, categoryType CategoryType) (bool, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindVisible returns global products plus the restaurant's own
	FindVisible(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]Product, int64, error)

	// SearchVisible matches name case-insensitively within the visible
	// scope, capped at limit rows
	SearchVisible(ctx context.Context, restaurantID uuid.UUID, query string, limit int) ([]Product, error)

	// ExistsInScope checks the (name, restaurant) uniqueness rule
	ExistsInScope(ctx context.Context, name string, restaurantID *uuid.UUID) (bool, error)

	// CountReferences returns how many recipe ingredients and stock rows
	// point at the product
	CountReferences(ctx context.Context, productID uuid.UUID) (int64, error)
}

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID loads a recipe with its ingredient list
	FindByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindByIDsForRestaurant loads the given recipes with ingredients,
	// restricted to one restaurant
	FindByIDsForRestaurant(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) ([]Recipe, error)

	FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]Recipe, int64, error)

	// ReplaceIngredients persists a recipe's new ingredient list in one
	// transaction
	ReplaceIngredients(ctx context.Context, recipe *Recipe) error
}

// PackagingRepository defines the interface for packaging persistence
type PackagingRepository interface {
	Create(ctx context.Context, packaging *ProductPackaging) error
	Update(ctx context.Context, packaging *ProductPackaging) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID loads a packaging with its product
	FindByID(ctx context.Context, id uuid.UUID) (*ProductPackaging, error)
	FindByEAN(ctx context.Context, ean string) (*ProductPackaging, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductPackaging, int64, error)

	// Search matches packaging name or EAN prefix, capped at limit rows
	Search(ctx context.Context, query string, limit int) ([]ProductPackaging, error)

	ExistsByEAN(ctx context.Context, ean string) (bool, error)
}
