package inventory

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockStockRepository is a mock implementation of inventory.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) Create(ctx context.Context, stock *inventory.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, stock *inventory.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindByProduct(ctx context.Context, restaurantID, productID uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, restaurantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]inventory.Stock, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) Decrement(ctx context.Context, restaurantID, productID uuid.UUID, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, restaurantID, productID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) Increment(ctx context.Context, restaurantID, productID uuid.UUID, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, restaurantID, productID, amount)
	return args.Bool(0), args.Error(1)
}

// MockBatchRepository is a mock implementation of inventory.BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) Create(ctx context.Context, batch *inventory.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]inventory.Batch, int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.Batch), args.Get(1).(int64), args.Error(2)
}

// MockReceptionRepository is a mock implementation of inventory.ReceptionRepository
type MockReceptionRepository struct {
	mock.Mock
}

func (m *MockReceptionRepository) CreateSession(ctx context.Context, session *inventory.InventorySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockReceptionRepository) CreateLog(ctx context.Context, log *inventory.ReceptionLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockReceptionRepository) FindLogsForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]inventory.ReceptionLog, int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.ReceptionLog), args.Get(1).(int64), args.Error(2)
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

// mockTransactionalRepositories bundles the repository mocks behind the
// TransactionalRepositories interface for use with NoOpTransactionScope
type mockTransactionalRepositories struct {
	stocks     *MockStockRepository
	batches    *MockBatchRepository
	receptions *MockReceptionRepository
	recipes    *MockRecipeRepository
	packagings *MockPackagingRepository
	products   *MockProductRepository
}

func newMockTransactionalRepositories() *mockTransactionalRepositories {
	return &mockTransactionalRepositories{
		stocks:     new(MockStockRepository),
		batches:    new(MockBatchRepository),
		receptions: new(MockReceptionRepository),
		recipes:    new(MockRecipeRepository),
		packagings: new(MockPackagingRepository),
		products:   new(MockProductRepository),
	}
}

func (r *mockTransactionalRepositories) StockRepo() inventory.StockRepository {
	return r.stocks
}

func (r *mockTransactionalRepositories) BatchRepo() inventory.BatchRepository {
	return r.batches
}

func (r *mockTransactionalRepositories) ReceptionRepo() inventory.ReceptionRepository {
	return r.receptions
}

func (r *mockTransactionalRepositories) RecipeRepo() catalog.RecipeRepository {
	return r.recipes
}

func (r *mockTransactionalRepositories) PackagingRepo() catalog.PackagingRepository {
	return r.packagings
}

func (r *mockTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return r.products
}

var _ TransactionalRepositories = (*mockTransactionalRepositories)(nil)
