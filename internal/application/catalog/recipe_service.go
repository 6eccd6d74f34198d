package catalog

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeService handles recipe management. Recipes always belong to one
// restaurant; there is no global recipe catalog.
type RecipeService struct {
	recipeRepo  catalog.RecipeRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo catalog.RecipeRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *RecipeService {
	return &RecipeService{
		recipeRepo:  recipeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateRecipe creates a recipe with its ingredient list
func (s *RecipeService) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*RecipeInfo, error) {
	ingredients, err := s.resolveIngredients(ctx, input.RestaurantID, input.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe, err := catalog.NewRecipe(input.RestaurantID, input.Name, input.Description, ingredients)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		s.logger.Error("Failed to create recipe", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create recipe")
	}

	s.logger.Info("Recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("name", recipe.Name),
		zap.Int("ingredients", len(recipe.Ingredients)))

	info := NewRecipeInfo(recipe)
	return &info, nil
}

// GetRecipe returns one of the restaurant's recipes with its ingredients
func (s *RecipeService) GetRecipe(ctx context.Context, restaurantID, recipeID uuid.UUID) (*RecipeInfo, error) {
	recipe, err := s.loadOwned(ctx, restaurantID, recipeID)
	if err != nil {
		return nil, err
	}

	info := NewRecipeInfo(recipe)
	return &info, nil
}

// ListRecipes returns the restaurant's recipes with pagination
func (s *RecipeService) ListRecipes(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (*shared.Paginated[RecipeInfo], error) {
	filter = filter.Normalize()

	recipes, total, err := s.recipeRepo.FindAllForRestaurant(ctx, restaurantID, filter)
	if err != nil {
		s.logger.Error("Failed to list recipes", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list recipes")
	}

	infos := make([]RecipeInfo, len(recipes))
	for i := range recipes {
		infos[i] = NewRecipeInfo(&recipes[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateRecipe updates a recipe's fields and replaces its ingredient list
// atomically: either the whole new list lands or the old one stays.
func (s *RecipeService) UpdateRecipe(ctx context.Context, input UpdateRecipeInput) (*RecipeInfo, error) {
	recipe, err := s.loadOwned(ctx, input.RestaurantID, input.RecipeID)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.resolveIngredients(ctx, input.RestaurantID, input.Ingredients)
	if err != nil {
		return nil, err
	}

	if err := recipe.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	if err := recipe.ReplaceIngredients(ingredients); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.ReplaceIngredients(ctx, recipe); err != nil {
		s.logger.Error("Failed to replace recipe ingredients", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update recipe")
	}
	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		s.logger.Error("Failed to update recipe", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update recipe")
	}

	// Reload so ingredient products come back populated
	updated, err := s.recipeRepo.FindByID(ctx, recipe.ID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update recipe")
	}

	info := NewRecipeInfo(updated)
	return &info, nil
}

// DeleteRecipe removes one of the restaurant's recipes
func (s *RecipeService) DeleteRecipe(ctx context.Context, restaurantID, recipeID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, restaurantID, recipeID); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("RECIPE_NOT_FOUND", "Recipe not found")
		}
		s.logger.Error("Failed to delete recipe", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete recipe")
	}

	s.logger.Info("Recipe deleted", zap.String("recipe_id", recipeID.String()))
	return nil
}

// loadOwned loads a recipe and checks it belongs to the restaurant.
// A recipe of another restaurant answers with FORBIDDEN, not NOT_FOUND.
func (s *RecipeService) loadOwned(ctx context.Context, restaurantID, recipeID uuid.UUID) (*catalog.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("RECIPE_NOT_FOUND", "Recipe not found")
		}
		return nil, err
	}
	if recipe.RestaurantID != restaurantID {
		return nil, shared.ErrForbidden
	}
	return recipe, nil
}

// resolveIngredients validates that every referenced product exists and is
// visible to the restaurant, then returns the domain inputs
func (s *RecipeService) resolveIngredients(ctx context.Context, restaurantID uuid.UUID, inputs []IngredientInput) ([]catalog.IngredientInput, error) {
	if len(inputs) == 0 {
		return nil, shared.NewDomainError("EMPTY_INGREDIENTS", "A recipe needs at least one ingredient")
	}

	ids := make([]uuid.UUID, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ProductID
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load ingredient products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve ingredients")
	}

	visible := make(map[uuid.UUID]bool, len(products))
	for i := range products {
		product := &products[i]
		if product.IsGlobal() || product.OwnedBy(restaurantID) {
			visible[product.ID] = true
		}
	}

	ingredients := make([]catalog.IngredientInput, len(inputs))
	for i, in := range inputs {
		if !visible[in.ProductID] {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Ingredient product not found")
		}
		ingredients[i] = catalog.IngredientInput{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		}
	}
	return ingredients, nil
}
