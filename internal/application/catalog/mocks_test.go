package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindVisible(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.Category, int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) ExistsInScope(ctx context.Context, name string, restaurantID *uuid.UUID, categoryType catalog.CategoryType) (bool, error) {
	args := m.Called(ctx, name, restaurantID, categoryType)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindVisible(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SearchVisible(ctx context.Context, restaurantID uuid.UUID, query string, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, restaurantID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsInScope(ctx context.Context, name string, restaurantID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) CountReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecipeRepository is a mock implementation of catalog.RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *catalog.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *catalog.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDsForRestaurant(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) ([]catalog.Recipe, error) {
	args := m.Called(ctx, restaurantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]catalog.Recipe, int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) ReplaceIngredients(ctx context.Context, recipe *catalog.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

// MockPackagingRepository is a mock implementation of catalog.PackagingRepository
type MockPackagingRepository struct {
	mock.Mock
}

func (m *MockPackagingRepository) Create(ctx context.Context, packaging *catalog.ProductPackaging) error {
	args := m.Called(ctx, packaging)
	return args.Error(0)
}

func (m *MockPackagingRepository) Update(ctx context.Context, packaging *catalog.ProductPackaging) error {
	args := m.Called(ctx, packaging)
	return args.Error(0)
}

func (m *MockPackagingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackagingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductPackaging, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductPackaging), args.Error(1)
}

func (m *MockPackagingRepository) FindByEAN(ctx context.Context, ean string) (*catalog.ProductPackaging, error) {
	args := m.Called(ctx, ean)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductPackaging), args.Error(1)
}

func (m *MockPackagingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductPackaging, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.ProductPackaging), args.Get(1).(int64), args.Error(2)
}

func (m *MockPackagingRepository) Search(ctx context.Context, query string, limit int) ([]catalog.ProductPackaging, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ProductPackaging), args.Error(1)
}

func (m *MockPackagingRepository) ExistsByEAN(ctx context.Context, ean string) (bool, error) {
	args := m.Called(ctx, ean)
	return args.Bool(0), args.Error(1)
}
