package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Search queries shorter than this answer with an empty result
const minSearchLength = 2

// Search endpoints never return more rows than this
const maxSearchResults = 10

// ProductService handles product management
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateProduct creates a product in the actor's scope
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductInfo, error) {
	unit, err := catalog.ParseUnit(input.Unit)
	if err != nil {
		return nil, err
	}

	scope := input.Actor.Scope()
	if !input.Actor.IsAdmin() && scope == nil {
		return nil, shared.ErrForbidden
	}

	if err := s.checkCategoryVisible(ctx, input.Actor, input.CategoryID); err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsInScope(ctx, input.Name, scope)
	if err != nil {
		s.logger.Error("Failed to check product uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}
	if exists {
		return nil, shared.NewDomainError("PRODUCT_EXISTS", "A product with this name already exists")
	}

	var product *catalog.Product
	if scope == nil {
		product, err = catalog.NewGlobalProduct(input.Name, unit, input.CategoryID)
	} else {
		product, err = catalog.NewProduct(*scope, input.Name, unit, input.CategoryID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
		zap.Bool("global", product.IsGlobal()))

	info := NewProductInfo(product)
	return &info, nil
}

// GetProduct returns a product visible to the actor
func (s *ProductService) GetProduct(ctx context.Context, actor Actor, productID uuid.UUID) (*ProductInfo, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	if !s.visibleTo(actor, product) {
		return nil, shared.ErrForbidden
	}

	info := NewProductInfo(product)
	return &info, nil
}

// ListProducts returns the products visible to the given restaurant
func (s *ProductService) ListProducts(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductInfo], error) {
	filter = filter.Normalize()

	products, total, err := s.productRepo.FindVisible(ctx, restaurantID, filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list products")
	}

	infos := make([]ProductInfo, len(products))
	for i := range products {
		infos[i] = NewProductInfo(&products[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// SearchProducts matches product names case-insensitively within the
// restaurant's visible scope. Results are deduplicated by lowercase name,
// preferring the restaurant's own entry over a global one, and capped at
// ten rows. Queries under two characters answer with an empty list.
func (s *ProductService) SearchProducts(ctx context.Context, restaurantID uuid.UUID, query string) ([]ProductInfo, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchLength {
		return []ProductInfo{}, nil
	}

	// Over-fetch so deduplication can still fill the cap
	products, err := s.productRepo.SearchVisible(ctx, restaurantID, query, maxSearchResults*2)
	if err != nil {
		s.logger.Error("Failed to search products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to search products")
	}

	byName := make(map[string]int, len(products))
	infos := make([]ProductInfo, 0, maxSearchResults)
	for i := range products {
		product := &products[i]
		key := strings.ToLower(product.Name)
		if idx, seen := byName[key]; seen {
			// A restaurant's own entry shadows the global one
			if !product.IsGlobal() && infos[idx].Global {
				infos[idx] = NewProductInfo(product)
			}
			continue
		}
		if len(infos) >= maxSearchResults {
			break
		}
		byName[key] = len(infos)
		infos = append(infos, NewProductInfo(product))
	}
	return infos, nil
}

// UpdateProduct updates a product the actor owns
func (s *ProductService) UpdateProduct(ctx context.Context, input UpdateProductInput) (*ProductInfo, error) {
	unit, err := catalog.ParseUnit(input.Unit)
	if err != nil {
		return nil, err
	}

	product, err := s.loadOwned(ctx, input.Actor, input.ProductID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategoryVisible(ctx, input.Actor, input.CategoryID); err != nil {
		return nil, err
	}

	if !strings.EqualFold(product.Name, input.Name) {
		exists, err := s.productRepo.ExistsInScope(ctx, input.Name, product.RestaurantID)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
		}
		if exists {
			return nil, shared.NewDomainError("PRODUCT_EXISTS", "A product with this name already exists")
		}
	}

	if err := product.Update(input.Name, unit, input.CategoryID); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	info := NewProductInfo(product)
	return &info, nil
}

// DeleteProduct removes a product that no recipe or stock row references
func (s *ProductService) DeleteProduct(ctx context.Context, input DeleteProductInput) error {
	if _, err := s.loadOwned(ctx, input.Actor, input.ProductID); err != nil {
		return err
	}

	refs, err := s.productRepo.CountReferences(ctx, input.ProductID)
	if err != nil {
		s.logger.Error("Failed to count product references", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete product")
	}
	if refs > 0 {
		return shared.NewDomainError("PRODUCT_IN_USE", "Product is referenced by recipes or stock")
	}

	if err := s.productRepo.Delete(ctx, input.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		s.logger.Error("Failed to delete product", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete product")
	}

	s.logger.Info("Product deleted", zap.String("product_id", input.ProductID.String()))
	return nil
}

// visibleTo reports whether the actor may read the product
func (s *ProductService) visibleTo(actor Actor, product *catalog.Product) bool {
	if actor.IsAdmin() || product.IsGlobal() {
		return true
	}
	return actor.RestaurantID != nil && product.OwnedBy(*actor.RestaurantID)
}

// loadOwned loads a product and checks the actor may modify it
func (s *ProductService) loadOwned(ctx context.Context, actor Actor, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	if !actor.IsAdmin() {
		if actor.RestaurantID == nil || !product.OwnedBy(*actor.RestaurantID) {
			return nil, shared.ErrForbidden
		}
	}
	return product, nil
}

// checkCategoryVisible verifies the category exists and is visible to the actor
func (s *ProductService) checkCategoryVisible(ctx context.Context, actor Actor, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return err
	}

	if actor.IsAdmin() || category.IsGlobal() {
		return nil
	}
	if actor.RestaurantID != nil && category.OwnedBy(*actor.RestaurantID) {
		return nil
	}
	return shared.ErrForbidden
}
