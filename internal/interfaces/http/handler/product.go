package handler

import (
	"github.com/backoffice/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductRequest is the body for creating or updating a product
type ProductRequest struct {
	Name       string `json:"name" binding:"required"`
	Unit       string `json:"unit" binding:"required"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
}

// ProductHandler handles product endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create creates a product in the actor's scope
func (h *ProductHandler) Create(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), catalog.CreateProductInput{
		Actor:      catalogActor(ident),
		Name:       req.Name,
		Unit:       req.Unit,
		CategoryID: uuid.MustParse(req.CategoryID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Get returns a single product visible to the actor
func (h *ProductHandler) Get(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), catalogActor(ident), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// List returns the products visible to the actor
func (h *ProductHandler) List(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	result, err := h.productService.ListProducts(c.Request.Context(), visibleScope(ident), listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Search matches product names within the actor's visible scope
func (h *ProductHandler) Search(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	products, err := h.productService.SearchProducts(c.Request.Context(), visibleScope(ident), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Update updates a product the actor owns
func (h *ProductHandler) Update(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), catalog.UpdateProductInput{
		Actor:      catalogActor(ident),
		ProductID:  productID,
		Name:       req.Name,
		Unit:       req.Unit,
		CategoryID: uuid.MustParse(req.CategoryID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product the actor owns
func (h *ProductHandler) Delete(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	err = h.productService.DeleteProduct(c.Request.Context(), catalog.DeleteProductInput{
		Actor:     catalogActor(ident),
		ProductID: productID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
