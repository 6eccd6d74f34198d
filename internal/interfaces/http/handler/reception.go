package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/backoffice/backend/internal/application/inventory"
)

// ReceiveRequest is the envelope for a reception. The type field selects
// the payload shape carried in data.
type ReceiveRequest struct {
	Type string          `json:"type" binding:"required,oneof=existing new"`
	Data json.RawMessage `json:"data" binding:"required"`
}

// ReceiveExistingData records the arrival of an already known packaging
type ReceiveExistingData struct {
	PackagingID      string `json:"packaging_id" binding:"required,uuid"`
	QuantityReceived int    `json:"quantity_received" binding:"required"`
}

// ReceiveNewData registers a packaging and records its first arrival
type ReceiveNewData struct {
	Name             string          `json:"name" binding:"required"`
	EAN              *string         `json:"ean"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	ProductID        string          `json:"product_id" binding:"required,uuid"`
	QuantityReceived int             `json:"quantity_received" binding:"required"`
}

// ReceptionHandler handles stock reception endpoints
type ReceptionHandler struct {
	BaseHandler
	receptionService *inventory.ReceptionService
}

// NewReceptionHandler creates a new reception handler
func NewReceptionHandler(receptionService *inventory.ReceptionService) *ReceptionHandler {
	return &ReceptionHandler{receptionService: receptionService}
}

// Receive records a delivery and increments the restaurant's stock.
// A type of "existing" references a known packaging; "new" registers the
// packaging and records its delivery in one call, for barcodes the catalog
// has never seen.
func (h *ReceptionHandler) Receive(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	var req ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	switch req.Type {
	case "existing":
		h.receiveExisting(c, restaurantID, req.Data)
	case "new":
		h.receiveNew(c, restaurantID, req.Data)
	}
}

func (h *ReceptionHandler) receiveExisting(c *gin.Context, restaurantID uuid.UUID, data json.RawMessage) {
	var payload ReceiveExistingData
	if err := bindReceptionData(data, &payload); err != nil {
		h.BadRequest(c, "Invalid reception data")
		return
	}

	result, err := h.receptionService.ReceiveExisting(c.Request.Context(), inventory.ReceiveExistingInput{
		RestaurantID:     restaurantID,
		PackagingID:      uuid.MustParse(payload.PackagingID),
		QuantityReceived: payload.QuantityReceived,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

func (h *ReceptionHandler) receiveNew(c *gin.Context, restaurantID uuid.UUID, data json.RawMessage) {
	var payload ReceiveNewData
	if err := bindReceptionData(data, &payload); err != nil {
		h.BadRequest(c, "Invalid reception data")
		return
	}

	result, err := h.receptionService.ReceiveNew(c.Request.Context(), inventory.ReceiveNewInput{
		RestaurantID:     restaurantID,
		Name:             payload.Name,
		EAN:              payload.EAN,
		Quantity:         payload.Quantity,
		ProductID:        uuid.MustParse(payload.ProductID),
		QuantityReceived: payload.QuantityReceived,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// bindReceptionData unmarshals the envelope's data field and applies the
// same binding validation ShouldBindJSON would.
func bindReceptionData(data json.RawMessage, obj any) error {
	if err := json.Unmarshal(data, obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

// List returns the reception history of the actor's restaurant
func (h *ReceptionHandler) List(c *gin.Context) {
	_, restaurantID, ok := h.currentRestaurant(c)
	if !ok {
		return
	}

	result, err := h.receptionService.ListReceptions(c.Request.Context(), restaurantID, listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
