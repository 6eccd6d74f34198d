package identity

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (lowercased)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns all users with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]User, int64, error)

	// ExistsByEmail checks if an email is already taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountByRestaurant returns the number of users attached to a restaurant
	CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error)
}

// RestaurantRepository defines the interface for restaurant persistence
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	Update(ctx context.Context, restaurant *Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	FindByName(ctx context.Context, name string) (*Restaurant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Restaurant, int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
