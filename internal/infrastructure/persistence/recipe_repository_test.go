package persistence

import (
	"context"
	"testing"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecipeTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Recipe{},
		&catalog.RecipeIngredient{},
	)
	require.NoError(t, err)

	return db
}

func createRecipeTestProduct(t *testing.T, db *gorm.DB, name string) *catalog.Product {
	t.Helper()

	category, err := catalog.NewGlobalCategory(name+" category", catalog.CategoryTypeFood)
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	product, err := catalog.NewGlobalProduct(name, catalog.UnitGram, category.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	return product
}

func TestRecipeRepository_FindByIDsForRestaurant(t *testing.T) {
	db := setupRecipeTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()

	restaurantID := uuid.New()
	otherRestaurantID := uuid.New()
	flour := createRecipeTestProduct(t, db, "Flour")

	ownRecipe, err := catalog.NewRecipe(restaurantID, "Bread", "", []catalog.IngredientInput{
		{ProductID: flour.ID, Quantity: decimal.RequireFromString("250")},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ownRecipe))

	foreignRecipe, err := catalog.NewRecipe(otherRestaurantID, "Foreign bread", "", []catalog.IngredientInput{
		{ProductID: flour.ID, Quantity: decimal.RequireFromString("100")},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, foreignRecipe))

	t.Run("loads recipes with ingredients and products", func(t *testing.T) {
		recipes, err := repo.FindByIDsForRestaurant(ctx, restaurantID, []uuid.UUID{ownRecipe.ID})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		require.Len(t, recipes[0].Ingredients, 1)
		require.NotNil(t, recipes[0].Ingredients[0].Product)
		assert.Equal(t, "Flour", recipes[0].Ingredients[0].Product.Name)
	})

	t.Run("excludes recipes of other restaurants", func(t *testing.T) {
		recipes, err := repo.FindByIDsForRestaurant(ctx, restaurantID,
			[]uuid.UUID{ownRecipe.ID, foreignRecipe.ID})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, ownRecipe.ID, recipes[0].ID)
	})

	t.Run("empty id list returns no rows", func(t *testing.T) {
		recipes, err := repo.FindByIDsForRestaurant(ctx, restaurantID, nil)
		require.NoError(t, err)
		assert.Empty(t, recipes)
	})
}

func TestRecipeRepository_ReplaceIngredients(t *testing.T) {
	db := setupRecipeTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()

	restaurantID := uuid.New()
	flour := createRecipeTestProduct(t, db, "Flour")
	yeast := createRecipeTestProduct(t, db, "Yeast")

	recipe, err := catalog.NewRecipe(restaurantID, "Bread", "", []catalog.IngredientInput{
		{ProductID: flour.ID, Quantity: decimal.RequireFromString("250")},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, recipe))

	require.NoError(t, recipe.ReplaceIngredients([]catalog.IngredientInput{
		{ProductID: yeast.ID, Quantity: decimal.RequireFromString("5")},
	}))
	require.NoError(t, repo.ReplaceIngredients(ctx, recipe))

	found, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, found.Ingredients, 1)
	assert.Equal(t, yeast.ID, found.Ingredients[0].ProductID)
	assert.True(t, decimal.RequireFromString("5").Equal(found.Ingredients[0].Quantity))

	var ingredientCount int64
	require.NoError(t, db.Model(&catalog.RecipeIngredient{}).
		Where("recipe_id = ?", recipe.ID).
		Count(&ingredientCount).Error)
	assert.Equal(t, int64(1), ingredientCount, "old rows must be gone")
}

func TestRecipeRepository_FindAllForRestaurant(t *testing.T) {
	db := setupRecipeTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()

	restaurantID := uuid.New()
	flour := createRecipeTestProduct(t, db, "Flour")

	for _, name := range []string{"Bread", "Brioche", "Croissant"} {
		recipe, err := catalog.NewRecipe(restaurantID, name, "", []catalog.IngredientInput{
			{ProductID: flour.ID, Quantity: decimal.RequireFromString("100")},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, recipe))
	}

	t.Run("paginates", func(t *testing.T) {
		recipes, total, err := repo.FindAllForRestaurant(ctx, restaurantID,
			shared.Filter{Page: 1, PageSize: 2, OrderBy: "name", OrderDir: "asc"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, recipes, 2)
		assert.Equal(t, "Bread", recipes[0].Name)
	})

	t.Run("filters by name search", func(t *testing.T) {
		recipes, total, err := repo.FindAllForRestaurant(ctx, restaurantID,
			shared.Filter{Search: "brio"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Brioche", recipes[0].Name)
	})

	t.Run("other restaurants see nothing", func(t *testing.T) {
		_, total, err := repo.FindAllForRestaurant(ctx, uuid.New(), shared.Filter{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestRecipeRepository_Delete(t *testing.T) {
	db := setupRecipeTestDB(t)
	repo := NewGormRecipeRepository(db)
	ctx := context.Background()

	t.Run("missing recipe reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
