package handler

import (
	"github.com/backoffice/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// RestaurantRequest is the body for creating or renaming a restaurant
type RestaurantRequest struct {
	Name string `json:"name" binding:"required"`
}

// RestaurantHandler handles restaurant administration endpoints
type RestaurantHandler struct {
	BaseHandler
	restaurantService *identity.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantService *identity.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// Create creates a restaurant
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	restaurant, err := h.restaurantService.CreateRestaurant(c.Request.Context(), identity.CreateRestaurantInput{
		Name: req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, restaurant)
}

// Get returns a single restaurant
func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurantID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID")
		return
	}

	restaurant, err := h.restaurantService.GetRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, restaurant)
}

// List returns a paginated restaurant listing
func (h *RestaurantHandler) List(c *gin.Context) {
	result, err := h.restaurantService.ListRestaurants(c.Request.Context(), listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update renames a restaurant
func (h *RestaurantHandler) Update(c *gin.Context) {
	restaurantID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID")
		return
	}

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	restaurant, err := h.restaurantService.UpdateRestaurant(c.Request.Context(), identity.UpdateRestaurantInput{
		RestaurantID: restaurantID,
		Name:         req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, restaurant)
}

// Delete removes a restaurant without users attached to it
func (h *RestaurantHandler) Delete(c *gin.Context) {
	restaurantID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID")
		return
	}

	if err := h.restaurantService.DeleteRestaurant(c.Request.Context(), restaurantID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
