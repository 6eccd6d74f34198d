package handler

import (
	"github.com/backoffice/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePackagingRequest is the body for registering a packaging
type CreatePackagingRequest struct {
	Name      string          `json:"name" binding:"required"`
	EAN       *string         `json:"ean"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	ProductID string          `json:"product_id" binding:"required,uuid"`
}

// UpdatePackagingRequest is the body for updating a packaging
type UpdatePackagingRequest struct {
	Name     string          `json:"name" binding:"required"`
	EAN      *string         `json:"ean"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// PackagingHandler handles product packaging endpoints
type PackagingHandler struct {
	BaseHandler
	packagingService *catalog.PackagingService
}

// NewPackagingHandler creates a new packaging handler
func NewPackagingHandler(packagingService *catalog.PackagingService) *PackagingHandler {
	return &PackagingHandler{packagingService: packagingService}
}

// Create registers a packaging for a product
func (h *PackagingHandler) Create(c *gin.Context) {
	var req CreatePackagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	packaging, err := h.packagingService.CreatePackaging(c.Request.Context(), catalog.CreatePackagingInput{
		Name:      req.Name,
		EAN:       req.EAN,
		Quantity:  req.Quantity,
		ProductID: uuid.MustParse(req.ProductID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, packaging)
}

// Get returns a single packaging
func (h *PackagingHandler) Get(c *gin.Context) {
	packagingID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid packaging ID")
		return
	}

	packaging, err := h.packagingService.GetPackaging(c.Request.Context(), packagingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, packaging)
}

// GetByEAN looks a packaging up by its scanned barcode
func (h *PackagingHandler) GetByEAN(c *gin.Context) {
	packaging, err := h.packagingService.GetPackagingByEAN(c.Request.Context(), c.Param("ean"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, packaging)
}

// List returns a paginated packaging listing
func (h *PackagingHandler) List(c *gin.Context) {
	result, err := h.packagingService.ListPackagings(c.Request.Context(), listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Search matches packaging names
func (h *PackagingHandler) Search(c *gin.Context) {
	packagings, err := h.packagingService.SearchPackagings(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, packagings)
}

// Update updates a packaging
func (h *PackagingHandler) Update(c *gin.Context) {
	packagingID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid packaging ID")
		return
	}

	var req UpdatePackagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	packaging, err := h.packagingService.UpdatePackaging(c.Request.Context(), catalog.UpdatePackagingInput{
		PackagingID: packagingID,
		Name:        req.Name,
		EAN:         req.EAN,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, packaging)
}

// Delete removes a packaging
func (h *PackagingHandler) Delete(c *gin.Context) {
	packagingID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid packaging ID")
		return
	}

	if err := h.packagingService.DeletePackaging(c.Request.Context(), packagingID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
