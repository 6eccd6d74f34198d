package handler

import (
	"github.com/backoffice/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SetThresholdRequest is the body for adjusting a stock alert threshold
type SetThresholdRequest struct {
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}

// StockHandler handles stock endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventory.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *inventory.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List returns the full stock of the actor's restaurant
func (h *StockHandler) List(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	stocks, err := h.stockService.ListStock(c.Request.Context(), restaurantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stocks)
}

// Get returns a single stock row of the actor's restaurant
func (h *StockHandler) Get(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	stockID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	stock, err := h.stockService.GetStock(c.Request.Context(), restaurantID, stockID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// SetThreshold adjusts the low-stock alert threshold of a stock row
func (h *StockHandler) SetThreshold(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	stockID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	var req SetThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	stock, err := h.stockService.SetThreshold(c.Request.Context(), inventory.SetThresholdInput{
		RestaurantID:   restaurantID,
		StockID:        stockID,
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}
