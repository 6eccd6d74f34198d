package handler

import (
	"github.com/backoffice/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchItemRequest is one recipe line in a production batch body
type BatchItemRequest struct {
	RecipeID string `json:"recipe_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required"`
}

// CreateBatchRequest is the body for declaring a production batch
type CreateBatchRequest struct {
	Items []BatchItemRequest `json:"items" binding:"required,min=1,dive"`
}

// BatchHandler handles production batch endpoints
type BatchHandler struct {
	BaseHandler
	batchService *inventory.BatchService
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(batchService *inventory.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// Create declares a production batch and deducts the aggregated
// ingredient demand from the restaurant's stock
func (h *BatchHandler) Create(c *gin.Context) {
	ident, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]inventory.BatchItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = inventory.BatchItemInput{
			RecipeID: uuid.MustParse(item.RecipeID),
			Quantity: item.Quantity,
		}
	}

	batch, err := h.batchService.CreateBatch(c.Request.Context(), inventory.CreateBatchInput{
		RestaurantID: restaurantID,
		UserID:       ident.UserID,
		Items:        items,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batch)
}

// Get returns a single batch of the actor's restaurant
func (h *BatchHandler) Get(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	batchID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}

	batch, err := h.batchService.GetBatch(c.Request.Context(), restaurantID, batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}

// List returns the batches of the actor's restaurant, newest first
func (h *BatchHandler) List(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	result, err := h.batchService.ListBatches(c.Request.Context(), restaurantID, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
