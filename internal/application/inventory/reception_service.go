package inventory

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReceptionService records incoming stock. A reception converts a
// packaging unit count into a product quantity (packaging quantity ×
// units received) and applies it to the restaurant's stock, creating the
// stock row on first arrival. The session, the audit log entry and the
// stock change commit in one transaction.
type ReceptionService struct {
	scope         TransactionScope
	receptionRepo inventory.ReceptionRepository
	logger        *zap.Logger
}

// NewReceptionService creates a new reception service
func NewReceptionService(
	scope TransactionScope,
	receptionRepo inventory.ReceptionRepository,
	logger *zap.Logger,
) *ReceptionService {
	return &ReceptionService{
		scope:         scope,
		receptionRepo: receptionRepo,
		logger:        logger,
	}
}

// ReceiveExisting records the arrival of a known packaging, typically
// resolved from a barcode scan
func (s *ReceptionService) ReceiveExisting(ctx context.Context, input ReceiveExistingInput) (*ReceptionInfo, error) {
	if input.QuantityReceived <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received unit count must be positive")
	}

	var info *ReceptionInfo
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		packaging, err := repos.PackagingRepo().FindByID(ctx, input.PackagingID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("PACKAGING_NOT_FOUND", "Packaging not found")
			}
			s.logger.Error("Failed to load packaging for reception", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
		}

		info, err = s.applyReception(ctx, repos, input.RestaurantID, packaging, input.QuantityReceived)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reception recorded",
		zap.String("restaurant_id", input.RestaurantID.String()),
		zap.String("packaging_id", input.PackagingID.String()),
		zap.Int("quantity_received", input.QuantityReceived))

	return info, nil
}

// ReceiveNew registers a packaging that was never scanned before and
// records its first arrival in the same transaction
func (s *ReceptionService) ReceiveNew(ctx context.Context, input ReceiveNewInput) (*ReceptionInfo, error) {
	if input.QuantityReceived <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received unit count must be positive")
	}

	packaging, err := catalog.NewProductPackaging(input.Name, input.EAN, input.Quantity, input.ProductID)
	if err != nil {
		return nil, err
	}

	var info *ReceptionInfo
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
			}
			s.logger.Error("Failed to load product for reception", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
		}

		if packaging.EAN != nil {
			taken, err := repos.PackagingRepo().ExistsByEAN(ctx, *packaging.EAN)
			if err != nil {
				s.logger.Error("Failed to check EAN uniqueness", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
			}
			if taken {
				return shared.NewDomainError("EAN_TAKEN", "A packaging with this barcode already exists")
			}
		}

		if err := repos.PackagingRepo().Create(ctx, packaging); err != nil {
			s.logger.Error("Failed to create packaging during reception", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
		}
		packaging.Product = product

		info, err = s.applyReception(ctx, repos, input.RestaurantID, packaging, input.QuantityReceived)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reception recorded with new packaging",
		zap.String("restaurant_id", input.RestaurantID.String()),
		zap.String("packaging_id", packaging.ID.String()),
		zap.Int("quantity_received", input.QuantityReceived))

	return info, nil
}

// ListReceptions returns the restaurant's reception audit trail, newest
// first
func (s *ReceptionService) ListReceptions(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (*shared.Paginated[ReceptionLogInfo], error) {
	filter = filter.Normalize()

	logs, total, err := s.receptionRepo.FindLogsForRestaurant(ctx, restaurantID, filter)
	if err != nil {
		s.logger.Error("Failed to list receptions", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list receptions")
	}

	infos := make([]ReceptionLogInfo, len(logs))
	for i := range logs {
		infos[i] = NewReceptionLogInfo(&logs[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// applyReception opens a session, appends the audit entry and upserts
// the stock row. Replaying the same reception increments stock again;
// the log entries are what tell the calls apart.
func (s *ReceptionService) applyReception(
	ctx context.Context,
	repos TransactionalRepositories,
	restaurantID uuid.UUID,
	packaging *catalog.ProductPackaging,
	quantityReceived int,
) (*ReceptionInfo, error) {
	delta := packaging.Quantity.Mul(decimal.NewFromInt(int64(quantityReceived)))

	session := inventory.NewInventorySession(restaurantID)
	if err := repos.ReceptionRepo().CreateSession(ctx, session); err != nil {
		s.logger.Error("Failed to create inventory session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
	}

	log, err := inventory.NewReceptionLog(restaurantID, packaging.ID, session.ID, quantityReceived)
	if err != nil {
		return nil, err
	}
	if err := repos.ReceptionRepo().CreateLog(ctx, log); err != nil {
		s.logger.Error("Failed to create reception log", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
	}

	stockQuantity := delta
	incremented, err := repos.StockRepo().Increment(ctx, restaurantID, packaging.ProductID, delta)
	if err != nil {
		s.logger.Error("Failed to increment stock", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
	}
	if incremented {
		stock, err := repos.StockRepo().FindByProduct(ctx, restaurantID, packaging.ProductID)
		if err != nil {
			s.logger.Error("Failed to reload stock after reception", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
		}
		stockQuantity = stock.Quantity
	} else {
		// First arrival of this product: create the row with the default
		// alert threshold
		stock, err := inventory.NewStock(restaurantID, packaging.ProductID, delta)
		if err != nil {
			return nil, err
		}
		if err := repos.StockRepo().Create(ctx, stock); err != nil {
			s.logger.Error("Failed to create stock row during reception", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reception")
		}
	}

	return &ReceptionInfo{
		SessionID:        session.ID,
		PackagingID:      packaging.ID,
		PackagingName:    packaging.Name,
		ProductID:        packaging.ProductID,
		QuantityReceived: quantityReceived,
		DeltaQuantity:    delta,
		StockQuantity:    stockQuantity,
	}, nil
}
