package handler

import (
	"github.com/backoffice/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientRequest is one recipe line in a recipe body
type IngredientRequest struct {
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// RecipeRequest is the body for creating or updating a recipe
type RecipeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// RecipeHandler handles recipe endpoints
type RecipeHandler struct {
	BaseHandler
	recipeService *catalog.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService *catalog.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (req RecipeRequest) ingredients() []catalog.IngredientInput {
	inputs := make([]catalog.IngredientInput, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		inputs[i] = catalog.IngredientInput{
			ProductID: uuid.MustParse(ing.ProductID),
			Quantity:  ing.Quantity,
		}
	}
	return inputs
}

// Create creates a recipe for the actor's restaurant
func (h *RecipeHandler) Create(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), catalog.CreateRecipeInput{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.ingredients(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, recipe)
}

// Get returns a single recipe of the actor's restaurant
func (h *RecipeHandler) Get(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	recipeID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID")
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), restaurantID, recipeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipe)
}

// List returns the recipes of the actor's restaurant
func (h *RecipeHandler) List(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	result, err := h.recipeService.ListRecipes(c.Request.Context(), restaurantID, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a recipe and replaces its ingredient list
func (h *RecipeHandler) Update(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	recipeID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID")
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), catalog.UpdateRecipeInput{
		RestaurantID: restaurantID,
		RecipeID:     recipeID,
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.ingredients(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipe)
}

// Delete removes a recipe of the actor's restaurant
func (h *RecipeHandler) Delete(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	recipeID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID")
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), restaurantID, recipeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
