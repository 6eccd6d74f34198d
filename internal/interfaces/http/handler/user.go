package handler

import (
	"github.com/backoffice/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateUserRequest is the body for creating a user account
type CreateUserRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role" binding:"required,oneof=admin chief staff"`
	RestaurantID *string `json:"restaurant_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest is the body for updating a user account.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role" binding:"omitempty,oneof=admin chief staff"`
	RestaurantID *string `json:"restaurant_id" binding:"omitempty,uuid"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ResetPasswordRequest is the body for an administrative password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UserHandler handles user administration endpoints
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create creates a user account
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	restaurantID, err := parseOptionalUUID(req.RestaurantID)
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), identity.CreateUserInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Role:         req.Role,
		RestaurantID: restaurantID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// Get returns a single user
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// List returns a paginated user listing
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.userService.ListUsers(c.Request.Context(), listFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a user account
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	restaurantID, err := parseOptionalUUID(req.RestaurantID)
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), identity.UpdateUserInput{
		UserID:       userID,
		Name:         req.Name,
		Role:         req.Role,
		RestaurantID: restaurantID,
		Status:       req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ResetPassword sets a new password on a user account
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err = h.userService.ResetPassword(c.Request.Context(), identity.ResetPasswordInput{
		UserID:      userID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password reset"})
}

// Delete removes a user account
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// parseOptionalUUID parses a UUID string that may be absent
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
