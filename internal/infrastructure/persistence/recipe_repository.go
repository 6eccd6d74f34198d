package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecipeRepository implements catalog.RecipeRepository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create persists a recipe with its ingredients
func (r *GormRecipeRepository) Create(ctx context.Context, recipe *catalog.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// Update updates a recipe's own fields, leaving the ingredient list untouched
func (r *GormRecipeRepository) Update(ctx context.Context, recipe *catalog.Recipe) error {
	return r.db.WithContext(ctx).
		Omit("Ingredients").
		Save(recipe).Error
}

// Delete deletes a recipe; ingredients go with it via FK cascade
func (r *GormRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID loads a recipe with its ingredient list
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Recipe, error) {
	var recipe catalog.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Product").
		First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// FindByIDsForRestaurant loads the given recipes with ingredients, restricted to one restaurant
func (r *GormRecipeRepository) FindByIDsForRestaurant(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) ([]catalog.Recipe, error) {
	if len(ids) == 0 {
		return []catalog.Recipe{}, nil
	}

	var recipes []catalog.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Product").
		Where("restaurant_id = ? AND id IN ?", restaurantID, ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindAllForRestaurant returns a restaurant's recipes with pagination
func (r *GormRecipeRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.Recipe, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).
		Model(&catalog.Recipe{}).
		Where("restaurant_id = ?", restaurantID)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []catalog.Recipe
	if err := query.
		Preload("Ingredients").
		Preload("Ingredients.Product").
		Order(filter.OrderBy + " " + strings.ToUpper(filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ReplaceIngredients persists a recipe's new ingredient list in one transaction.
// The old rows are deleted and the in-memory list inserted, so the swap is
// all-or-nothing.
func (r *GormRecipeRepository) ReplaceIngredients(ctx context.Context, recipe *catalog.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("recipe_id = ?", recipe.ID).
			Delete(&catalog.RecipeIngredient{}).Error; err != nil {
			return err
		}

		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}

		return tx.Model(&catalog.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"version":    recipe.Version,
				"updated_at": recipe.UpdatedAt,
			}).Error
	})
}

// Ensure GormRecipeRepository implements RecipeRepository
var _ catalog.RecipeRepository = (*GormRecipeRepository)(nil)
