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

// PackagingService handles packaging management. Packagings and their
// barcodes are shared across restaurants: a scanned EAN resolves to the
// same packaging everywhere.
type PackagingService struct {
	packagingRepo catalog.PackagingRepository
	productRepo   catalog.ProductRepository
	logger        *zap.Logger
}

// NewPackagingService creates a new packaging service
func NewPackagingService(
	packagingRepo catalog.PackagingRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *PackagingService {
	return &PackagingService{
		packagingRepo: packagingRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// CreatePackaging registers a packaging for an existing product
func (s *PackagingService) CreatePackaging(ctx context.Context, input CreatePackagingInput) (*PackagingInfo, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	packaging, err := catalog.NewProductPackaging(input.Name, input.EAN, input.Quantity, product.ID)
	if err != nil {
		return nil, err
	}

	if packaging.EAN != nil {
		taken, err := s.packagingRepo.ExistsByEAN(ctx, *packaging.EAN)
		if err != nil {
			s.logger.Error("Failed to check EAN uniqueness", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create packaging")
		}
		if taken {
			return nil, shared.NewDomainError("EAN_TAKEN", "A packaging with this barcode already exists")
		}
	}

	if err := s.packagingRepo.Create(ctx, packaging); err != nil {
		s.logger.Error("Failed to create packaging", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create packaging")
	}

	packaging.Product = product
	s.logger.Info("Packaging created",
		zap.String("packaging_id", packaging.ID.String()),
		zap.String("product_id", product.ID.String()))

	info := NewPackagingInfo(packaging)
	return &info, nil
}

// GetPackaging returns a packaging by ID
func (s *PackagingService) GetPackaging(ctx context.Context, packagingID uuid.UUID) (*PackagingInfo, error) {
	packaging, err := s.packagingRepo.FindByID(ctx, packagingID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PACKAGING_NOT_FOUND", "Packaging not found")
		}
		return nil, err
	}

	info := NewPackagingInfo(packaging)
	return &info, nil
}

// GetPackagingByEAN resolves a scanned barcode to its packaging
func (s *PackagingService) GetPackagingByEAN(ctx context.Context, ean string) (*PackagingInfo, error) {
	packaging, err := s.packagingRepo.FindByEAN(ctx, ean)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PACKAGING_NOT_FOUND", "No packaging registered for this barcode")
		}
		return nil, err
	}

	info := NewPackagingInfo(packaging)
	return &info, nil
}

// ListPackagings returns all packagings with pagination
func (s *PackagingService) ListPackagings(ctx context.Context, filter shared.Filter) (*shared.Paginated[PackagingInfo], error) {
	filter = filter.Normalize()

	packagings, total, err := s.packagingRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list packagings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list packagings")
	}

	infos := make([]PackagingInfo, len(packagings))
	for i := range packagings {
		infos[i] = NewPackagingInfo(&packagings[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// SearchPackagings matches packaging names or barcode prefixes, capped at
// ten rows. Queries under two characters answer with an empty list.
func (s *PackagingService) SearchPackagings(ctx context.Context, query string) ([]PackagingInfo, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchLength {
		return []PackagingInfo{}, nil
	}

	packagings, err := s.packagingRepo.Search(ctx, query, maxSearchResults)
	if err != nil {
		s.logger.Error("Failed to search packagings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to search packagings")
	}

	infos := make([]PackagingInfo, len(packagings))
	for i := range packagings {
		infos[i] = NewPackagingInfo(&packagings[i])
	}
	return infos, nil
}

// UpdatePackaging updates a packaging's name, barcode and quantity
func (s *PackagingService) UpdatePackaging(ctx context.Context, input UpdatePackagingInput) (*PackagingInfo, error) {
	packaging, err := s.packagingRepo.FindByID(ctx, input.PackagingID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PACKAGING_NOT_FOUND", "Packaging not found")
		}
		return nil, err
	}

	previousEAN := packaging.EAN
	if err := packaging.Update(input.Name, input.EAN, input.Quantity); err != nil {
		return nil, err
	}

	if packaging.EAN != nil && (previousEAN == nil || *previousEAN != *packaging.EAN) {
		taken, err := s.packagingRepo.ExistsByEAN(ctx, *packaging.EAN)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update packaging")
		}
		if taken {
			return nil, shared.NewDomainError("EAN_TAKEN", "A packaging with this barcode already exists")
		}
	}

	if err := s.packagingRepo.Update(ctx, packaging); err != nil {
		s.logger.Error("Failed to update packaging", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update packaging")
	}

	info := NewPackagingInfo(packaging)
	return &info, nil
}

// DeletePackaging removes a packaging
func (s *PackagingService) DeletePackaging(ctx context.Context, packagingID uuid.UUID) error {
	if err := s.packagingRepo.Delete(ctx, packagingID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PACKAGING_NOT_FOUND", "Packaging not found")
		}
		s.logger.Error("Failed to delete packaging", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete packaging")
	}

	s.logger.Info("Packaging deleted", zap.String("packaging_id", packagingID.String()))
	return nil
}
