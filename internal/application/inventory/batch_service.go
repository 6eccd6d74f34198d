package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BatchService launches production batches. A launch resolves the
// requested recipes, aggregates their ingredient demand per product, and
// commits the batch together with the matching stock decrements in one
// transaction: either the batch exists and every decrement landed, or
// nothing changed.
type BatchService struct {
	scope     TransactionScope
	batchRepo inventory.BatchRepository
	logger    *zap.Logger
}

// NewBatchService creates a new batch service
func NewBatchService(
	scope TransactionScope,
	batchRepo inventory.BatchRepository,
	logger *zap.Logger,
) *BatchService {
	return &BatchService{
		scope:     scope,
		batchRepo: batchRepo,
		logger:    logger,
	}
}

// productDemand is the accumulated ingredient need for one product across
// every recipe of the batch
type productDemand struct {
	product *catalog.Product
	needed  decimal.Decimal
}

// CreateBatch validates and commits a production run. Every referenced
// recipe must exist and belong to the caller's restaurant; a missing
// recipe fails the whole request. Stock is checked before any mutation,
// then decremented with conditional updates, so concurrent launches
// cannot drive a product negative.
func (s *BatchService) CreateBatch(ctx context.Context, input CreateBatchInput) (*BatchInfo, error) {
	items := make([]inventory.BatchItemInput, len(input.Items))
	for i, in := range input.Items {
		items[i] = inventory.BatchItemInput{
			RecipeID: in.RecipeID,
			Quantity: in.Quantity,
		}
	}

	batch, err := inventory.NewBatch(input.RestaurantID, input.UserID, items)
	if err != nil {
		return nil, err
	}

	var recipes map[uuid.UUID]*catalog.Recipe
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		recipes, err = s.loadRecipes(ctx, repos, batch)
		if err != nil {
			return err
		}

		demands, order := aggregateDemand(batch, recipes)

		// Validation pass, before any write
		for _, productID := range order {
			demand := demands[productID]
			stock, err := repos.StockRepo().FindByProduct(ctx, input.RestaurantID, productID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("PRODUCT_NOT_IN_INVENTORY",
						fmt.Sprintf("No stock record for %s", demandName(demand)))
				}
				s.logger.Error("Failed to load stock for batch validation", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to launch batch")
			}
			if !stock.CanFulfill(demand.needed) {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Insufficient stock for %s: missing %s",
						demandName(demand), stock.Shortfall(demand.needed).String()))
			}
		}

		if err := repos.BatchRepo().Create(ctx, batch); err != nil {
			s.logger.Error("Failed to create batch", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to launch batch")
		}

		// Commit pass: conditional decrements. A failed decrement means a
		// concurrent transaction depleted the row since validation; the
		// error aborts the whole transaction.
		for _, productID := range order {
			demand := demands[productID]
			ok, err := repos.StockRepo().Decrement(ctx, input.RestaurantID, productID, demand.needed)
			if err != nil {
				s.logger.Error("Failed to decrement stock", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to launch batch")
			}
			if !ok {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Insufficient stock for %s", demandName(demand)))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Attach recipes only after the insert: a pointer set before Create
	// would make GORM cascade the recipe rows into the launch transaction.
	for i := range batch.Items {
		batch.Items[i].Recipe = recipes[batch.Items[i].RecipeID]
	}

	s.logger.Info("Batch launched",
		zap.String("batch_id", batch.ID.String()),
		zap.String("restaurant_id", input.RestaurantID.String()),
		zap.Int("items", len(batch.Items)))

	info := NewBatchInfo(batch)
	return &info, nil
}

// GetBatch returns one of the restaurant's batches with its items
func (s *BatchService) GetBatch(ctx context.Context, restaurantID, batchID uuid.UUID) (*BatchInfo, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("BATCH_NOT_FOUND", "Batch not found")
		}
		s.logger.Error("Failed to load batch", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load batch")
	}
	if batch.RestaurantID != restaurantID {
		return nil, shared.ErrForbidden
	}

	info := NewBatchInfo(batch)
	return &info, nil
}

// ListBatches returns the restaurant's batches, newest first
func (s *BatchService) ListBatches(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (*shared.Paginated[BatchInfo], error) {
	filter = filter.Normalize()

	batches, total, err := s.batchRepo.FindAllForRestaurant(ctx, restaurantID, filter)
	if err != nil {
		s.logger.Error("Failed to list batches", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list batches")
	}

	infos := make([]BatchInfo, len(batches))
	for i := range batches {
		infos[i] = NewBatchInfo(&batches[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// loadRecipes fetches every recipe the batch references, restricted to
// the batch's restaurant. Any missing recipe fails the request.
func (s *BatchService) loadRecipes(ctx context.Context, repos TransactionalRepositories, batch *inventory.Batch) (map[uuid.UUID]*catalog.Recipe, error) {
	recipes, err := repos.RecipeRepo().FindByIDsForRestaurant(ctx, batch.RestaurantID, batch.RecipeIDs())
	if err != nil {
		s.logger.Error("Failed to load batch recipes", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to launch batch")
	}

	byID := make(map[uuid.UUID]*catalog.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	for i := range batch.Items {
		if _, found := byID[batch.Items[i].RecipeID]; !found {
			return nil, shared.NewDomainError("RECIPE_NOT_FOUND",
				fmt.Sprintf("Recipe %s not found", batch.Items[i].RecipeID))
		}
	}
	return byID, nil
}

// aggregateDemand sums ingredient quantities per product across the
// batch items, in first-appearance order. Quantities use exact decimal
// arithmetic.
func aggregateDemand(batch *inventory.Batch, recipes map[uuid.UUID]*catalog.Recipe) (map[uuid.UUID]*productDemand, []uuid.UUID) {
	demands := make(map[uuid.UUID]*productDemand)
	order := make([]uuid.UUID, 0)

	for _, item := range batch.Items {
		recipe := recipes[item.RecipeID]
		multiplier := decimal.NewFromInt(int64(item.Quantity))
		for i := range recipe.Ingredients {
			ingredient := &recipe.Ingredients[i]
			amount := ingredient.Quantity.Mul(multiplier)
			if demand, seen := demands[ingredient.ProductID]; seen {
				demand.needed = demand.needed.Add(amount)
				continue
			}
			demands[ingredient.ProductID] = &productDemand{
				product: ingredient.Product,
				needed:  amount,
			}
			order = append(order, ingredient.ProductID)
		}
	}
	return demands, order
}

func demandName(demand *productDemand) string {
	if demand.product != nil {
		return demand.product.Name
	}
	return "product"
}
