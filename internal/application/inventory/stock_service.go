package inventory

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockService exposes the restaurant's stock levels and the low-stock
// alert configuration. All quantity mutations go through the batch and
// reception services; this one only reads and tunes thresholds.
type StockService struct {
	stockRepo inventory.StockRepository
	logger    *zap.Logger
}

// NewStockService creates a new stock service
func NewStockService(stockRepo inventory.StockRepository, logger *zap.Logger) *StockService {
	return &StockService{
		stockRepo: stockRepo,
		logger:    logger,
	}
}

// ListStock returns every stock row of the restaurant with its product
func (s *StockService) ListStock(ctx context.Context, restaurantID uuid.UUID) ([]StockInfo, error) {
	stocks, err := s.stockRepo.FindAllForRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Failed to list stock", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list stock")
	}

	infos := make([]StockInfo, len(stocks))
	for i := range stocks {
		infos[i] = NewStockInfo(&stocks[i])
	}
	return infos, nil
}

// GetStock returns one of the restaurant's stock rows
func (s *StockService) GetStock(ctx context.Context, restaurantID, stockID uuid.UUID) (*StockInfo, error) {
	stock, err := s.loadOwned(ctx, restaurantID, stockID)
	if err != nil {
		return nil, err
	}

	info := NewStockInfo(stock)
	return &info, nil
}

// SetThreshold updates the low-stock alert level of one stock row
func (s *StockService) SetThreshold(ctx context.Context, input SetThresholdInput) (*StockInfo, error) {
	stock, err := s.loadOwned(ctx, input.RestaurantID, input.StockID)
	if err != nil {
		return nil, err
	}

	if err := stock.SetAlertThreshold(input.AlertThreshold); err != nil {
		return nil, err
	}

	if err := s.stockRepo.Update(ctx, stock); err != nil {
		s.logger.Error("Failed to update stock threshold", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update threshold")
	}

	s.logger.Info("Stock threshold updated",
		zap.String("stock_id", stock.ID.String()),
		zap.String("threshold", stock.AlertThreshold.String()))

	info := NewStockInfo(stock)
	return &info, nil
}

// loadOwned loads a stock row and checks it belongs to the restaurant.
// Another restaurant's row answers with FORBIDDEN, not NOT_FOUND.
func (s *StockService) loadOwned(ctx context.Context, restaurantID, stockID uuid.UUID) (*inventory.Stock, error) {
	stock, err := s.stockRepo.FindByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STOCK_NOT_FOUND", "Stock record not found")
		}
		s.logger.Error("Failed to load stock", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load stock")
	}
	if stock.RestaurantID != restaurantID {
		return nil, shared.ErrForbidden
	}
	return stock, nil
}
