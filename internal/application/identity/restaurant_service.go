package identity

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestaurantService handles administrative restaurant management
type RestaurantService struct {
	restaurantRepo identity.RestaurantRepository
	userRepo       identity.UserRepository
	stockRepo      inventory.StockRepository
	logger         *zap.Logger
}

// NewRestaurantService creates a new restaurant management service
func NewRestaurantService(
	restaurantRepo identity.RestaurantRepository,
	userRepo identity.UserRepository,
	stockRepo inventory.StockRepository,
	logger *zap.Logger,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		stockRepo:      stockRepo,
		logger:         logger,
	}
}

// CreateRestaurant creates a new restaurant
func (s *RestaurantService) CreateRestaurant(ctx context.Context, input CreateRestaurantInput) (*RestaurantInfo, error) {
	taken, err := s.restaurantRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		s.logger.Error("Failed to check restaurant name uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create restaurant")
	}
	if taken {
		return nil, shared.NewDomainError("NAME_TAKEN", "A restaurant with this name already exists")
	}

	restaurant, err := identity.NewRestaurant(input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		s.logger.Error("Failed to create restaurant", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create restaurant")
	}

	s.logger.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name))

	info := NewRestaurantInfo(restaurant)
	return &info, nil
}

// GetRestaurant returns a single restaurant by ID
func (s *RestaurantService) GetRestaurant(ctx context.Context, restaurantID uuid.UUID) (*RestaurantInfo, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("RESTAURANT_NOT_FOUND", "Restaurant not found")
		}
		return nil, err
	}

	info := NewRestaurantInfo(restaurant)
	return &info, nil
}

// ListRestaurants returns all restaurants with pagination
func (s *RestaurantService) ListRestaurants(ctx context.Context, filter shared.Filter) (*shared.Paginated[RestaurantInfo], error) {
	filter = filter.Normalize()

	restaurants, total, err := s.restaurantRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list restaurants", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list restaurants")
	}

	infos := make([]RestaurantInfo, len(restaurants))
	for i := range restaurants {
		infos[i] = NewRestaurantInfo(&restaurants[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateRestaurant renames a restaurant
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, input UpdateRestaurantInput) (*RestaurantInfo, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("RESTAURANT_NOT_FOUND", "Restaurant not found")
		}
		return nil, err
	}

	if restaurant.Name != input.Name {
		taken, err := s.restaurantRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update restaurant")
		}
		if taken {
			return nil, shared.NewDomainError("NAME_TAKEN", "A restaurant with this name already exists")
		}
	}

	if err := restaurant.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		s.logger.Error("Failed to update restaurant", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update restaurant")
	}

	s.logger.Info("Restaurant renamed",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name))

	info := NewRestaurantInfo(restaurant)
	return &info, nil
}

// DeleteRestaurant removes a restaurant that has no users or stock
// referencing it
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	userCount, err := s.userRepo.CountByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Failed to count restaurant users", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete restaurant")
	}
	if userCount > 0 {
		return shared.NewDomainError("RESTAURANT_IN_USE", "Restaurant still has users attached")
	}

	stockCount, err := s.stockRepo.CountByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Failed to count restaurant stock", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete restaurant")
	}
	if stockCount > 0 {
		return shared.NewDomainError("RESTAURANT_IN_USE", "Restaurant still has stock on hand")
	}

	if err := s.restaurantRepo.Delete(ctx, restaurantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("RESTAURANT_NOT_FOUND", "Restaurant not found")
		}
		s.logger.Error("Failed to delete restaurant", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete restaurant")
	}

	s.logger.Info("Restaurant deleted", zap.String("restaurant_id", restaurantID.String()))
	return nil
}
