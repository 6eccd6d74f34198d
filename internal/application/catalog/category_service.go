package catalog

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService handles category management. Admins maintain the global
// catalog; chiefs maintain their restaurant's own entries.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo catalog.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory creates a category in the actor's scope
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryInfo, error) {
	categoryType, err := catalog.ParseCategoryType(input.Type)
	if err != nil {
		return nil, err
	}

	scope := input.Actor.Scope()
	if !input.Actor.IsAdmin() && scope == nil {
		return nil, shared.ErrForbidden
	}

	exists, err := s.categoryRepo.ExistsInScope(ctx, input.Name, scope, categoryType)
	if err != nil {
		s.logger.Error("Failed to check category uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}
	if exists {
		return nil, shared.NewDomainError("CATEGORY_EXISTS", "A category with this name already exists")
	}

	var category *catalog.Category
	if scope == nil {
		category, err = catalog.NewGlobalCategory(input.Name, categoryType)
	} else {
		category, err = catalog.NewCategory(*scope, input.Name, categoryType)
	}
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
		zap.Bool("global", category.IsGlobal()))

	info := NewCategoryInfo(category)
	return &info, nil
}

// ListCategories returns the categories visible to the given restaurant:
// the global set plus the restaurant's own
func (s *CategoryService) ListCategories(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (*shared.Paginated[CategoryInfo], error) {
	filter = filter.Normalize()

	categories, total, err := s.categoryRepo.FindVisible(ctx, restaurantID, filter)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list categories")
	}

	infos := make([]CategoryInfo, len(categories))
	for i := range categories {
		infos[i] = NewCategoryInfo(&categories[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateCategory renames a category the actor is allowed to edit
func (s *CategoryService) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*CategoryInfo, error) {
	category, err := s.loadOwned(ctx, input.Actor, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if category.Name != input.Name {
		exists, err := s.categoryRepo.ExistsInScope(ctx, input.Name, category.RestaurantID, category.Type)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
		}
		if exists {
			return nil, shared.NewDomainError("CATEGORY_EXISTS", "A category with this name already exists")
		}
	}

	if err := category.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update category")
	}

	info := NewCategoryInfo(category)
	return &info, nil
}

// DeleteCategory removes a category the actor is allowed to edit
func (s *CategoryService) DeleteCategory(ctx context.Context, actor Actor, categoryID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, actor, categoryID); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		s.logger.Error("Failed to delete category", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
	}

	s.logger.Info("Category deleted", zap.String("category_id", categoryID.String()))
	return nil
}

// loadOwned loads a category and checks the actor may modify it. Admins
// may touch anything; others only their own restaurant's entries.
func (s *CategoryService) loadOwned(ctx context.Context, actor Actor, categoryID uuid.UUID) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	if !actor.IsAdmin() {
		if actor.RestaurantID == nil || !category.OwnedBy(*actor.RestaurantID) {
			return nil, shared.ErrForbidden
		}
	}
	return category, nil
}
