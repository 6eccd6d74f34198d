package identity

import (
	"time"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput contains credentials for authentication
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the session token and user information after login
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"`
	User      UserInfo  `json:"user"`
}

// LogoutInput identifies the session token to revoke
type LogoutInput struct {
	TokenID      string
	RemainingTTL time.Duration
	UserID       uuid.UUID
}

// GetCurrentUserInput identifies the authenticated user
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// ChangePasswordInput contains data for a self-service password change
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// UserInfo is the read model for user data
type UserInfo struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewUserInfo maps a user aggregate to its read model
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		RestaurantID: user.RestaurantID,
		Status:       string(user.Status),
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
	}
}

// CreateUserInput contains data for creating a user account
type CreateUserInput struct {
	Email        string
	Password     string
	Name         string
	Role         string
	RestaurantID *uuid.UUID
}

// UpdateUserInput contains data for updating a user account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	UserID       uuid.UUID
	Name         *string
	Role         *string
	RestaurantID *uuid.UUID
	Status       *string
}

// ResetPasswordInput contains data for an administrative password reset
type ResetPasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// RestaurantInfo is the read model for restaurant data
type RestaurantInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRestaurantInfo maps a restaurant aggregate to its read model
func NewRestaurantInfo(restaurant *identity.Restaurant) RestaurantInfo {
	return RestaurantInfo{
		ID:        restaurant.ID,
		Name:      restaurant.Name,
		CreatedAt: restaurant.CreatedAt,
	}
}

// CreateRestaurantInput contains data for creating a restaurant
type CreateRestaurantInput struct {
	Name string
}

// UpdateRestaurantInput contains data for renaming a restaurant
type UpdateRestaurantInput struct {
	RestaurantID uuid.UUID
	Name         string
}
