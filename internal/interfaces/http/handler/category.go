package handler

import (
	"github.com/backoffice/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CreateCategoryRequest is the body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// UpdateCategoryRequest is the body for renaming a category
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create creates a category in the actor's scope: global for admins, the
// actor's restaurant otherwise
func (h *CategoryHandler) Create(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), catalog.CreateCategoryInput{
		Actor: catalogActor(ident),
		Name:  req.Name,
		Type:  req.Type,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// List returns the categories visible to the actor
func (h *CategoryHandler) List(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	result, err := h.categoryService.ListCategories(c.Request.Context(), visibleScope(ident), listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update renames a category the actor owns
func (h *CategoryHandler) Update(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	categoryID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), catalog.UpdateCategoryInput{
		Actor:      catalogActor(ident),
		CategoryID: categoryID,
		Name:       req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Delete removes a category the actor owns
func (h *CategoryHandler) Delete(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	categoryID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), catalogActor(ident), categoryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
