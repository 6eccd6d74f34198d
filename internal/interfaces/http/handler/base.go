package handler

import (
	"errors"
	"net/http"

	"github.com/backoffice/backend/internal/application/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// parseID parses the :id path parameter as a UUID
func parseID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// listFilter binds the common pagination query parameters
func listFilter(c *gin.Context) shared.Filter {
	var req dto.ListRequest
	_ = c.ShouldBindQuery(&req)
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}.Normalize()
}

// currentIdentity returns the authenticated identity, or answers 401 and
// returns false when the session is missing
func (h *BaseHandler) currentIdentity(c *gin.Context) (*middleware.Identity, bool) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return nil, false
	}
	return ident, true
}

// currentRestaurant returns the authenticated identity and its restaurant.
// Admin sessions carry no restaurant and answer 403.
func (h *BaseHandler) currentRestaurant(c *gin.Context) (*middleware.Identity, uuid.UUID, bool) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return nil, uuid.Nil, false
	}
	if ident.RestaurantID == nil {
		h.Forbidden(c, "A restaurant context is required for this operation")
		return nil, uuid.Nil, false
	}
	return ident, *ident.RestaurantID, true
}

// catalogActor maps the session identity to a catalog actor
func catalogActor(ident *middleware.Identity) catalog.Actor {
	return catalog.Actor{
		UserID:       ident.UserID,
		Role:         string(ident.Role),
		RestaurantID: ident.RestaurantID,
	}
}

// visibleScope returns the restaurant whose catalog the identity reads:
// uuid.Nil for admins, which restricts listings to the global set.
func visibleScope(ident *middleware.Identity) uuid.UUID {
	if ident.RestaurantID == nil {
		return uuid.Nil
	}
	return *ident.RestaurantID
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func (h *BaseHandler) Forbidden(c *gin.Context, message string) {
	h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError maps domain errors to HTTP responses. Anything that is not a
// domain error answers as an internal error without leaking details.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
