package identity

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles administrative user management
type UserService struct {
	userRepo       identity.UserRepository
	restaurantRepo identity.RestaurantRepository
	logger         *zap.Logger
}

// NewUserService creates a new user management service
func NewUserService(
	userRepo identity.UserRepository,
	restaurantRepo identity.RestaurantRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// CreateUser creates a new user account
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	role, err := identity.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}
	if taken {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "A user with this email already exists")
	}

	if input.RestaurantID != nil {
		if _, err := s.restaurantRepo.FindByID(ctx, *input.RestaurantID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("RESTAURANT_NOT_FOUND", "Restaurant not found")
			}
			s.logger.Error("Failed to load restaurant", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
		}
	}

	user, err := identity.NewUser(input.Email, input.Password, input.Name, role, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	info := NewUserInfo(user)
	return &info, nil
}

// GetUser returns a single user by ID
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	info := NewUserInfo(user)
	return &info, nil
}

// ListUsers returns all users with pagination
func (s *UserService) ListUsers(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserInfo], error) {
	filter = filter.Normalize()

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list users")
	}

	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = NewUserInfo(&users[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateUser updates a user's name, role, restaurant or status
func (s *UserService) UpdateUser(ctx context.Context, input UpdateUserInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	if input.Name != nil {
		if err := user.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.Role != nil {
		role, err := identity.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		restaurantID := input.RestaurantID
		if restaurantID == nil {
			restaurantID = user.RestaurantID
		}
		if restaurantID != nil {
			if _, err := s.restaurantRepo.FindByID(ctx, *restaurantID); err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil, shared.NewDomainError("RESTAURANT_NOT_FOUND", "Restaurant not found")
				}
				return nil, err
			}
		}
		if err := user.ChangeRole(role, restaurantID); err != nil {
			return nil, err
		}
	} else if input.RestaurantID != nil {
		if _, err := s.restaurantRepo.FindByID(ctx, *input.RestaurantID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("RESTAURANT_NOT_FOUND", "Restaurant not found")
			}
			return nil, err
		}
		if err := user.ChangeRole(user.Role, input.RestaurantID); err != nil {
			return nil, err
		}
	}

	if input.Status != nil {
		switch identity.UserStatus(*input.Status) {
		case identity.UserStatusActive:
			if !user.IsActive() {
				if err := user.Activate(); err != nil {
					return nil, err
				}
			}
		case identity.UserStatusInactive:
			if user.IsActive() {
				if err := user.Deactivate(); err != nil {
					return nil, err
				}
			}
		default:
			return nil, shared.NewDomainError("INVALID_STATUS", "Status must be active or inactive")
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update user")
	}

	s.logger.Info("User updated", zap.String("user_id", user.ID.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// ResetPassword sets a new password without the current one.
// Reserved for administrators.
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return err
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to reset password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to reset password")
	}

	s.logger.Info("User password reset", zap.String("user_id", user.ID.String()))
	return nil
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to delete user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete user")
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()))
	return nil
}
