package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPackagingRepository implements catalog.PackagingRepository using GORM
type GormPackagingRepository struct {
	db *gorm.DB
}

// NewGormPackagingRepository creates a new GormPackagingRepository
func NewGormPackagingRepository(db *gorm.DB) *GormPackagingRepository {
	return &GormPackagingRepository{db: db}
}

// Create creates a new packaging
func (r *GormPackagingRepository) Create(ctx context.Context, packaging *catalog.ProductPackaging) error {
	return r.db.WithContext(ctx).Create(packaging).Error
}

// Update updates an existing packaging
func (r *GormPackagingRepository) Update(ctx context.Context, packaging *catalog.ProductPackaging) error {
	return r.db.WithContext(ctx).Save(packaging).Error
}

// Delete deletes a packaging by ID
func (r *GormPackagingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductPackaging{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID loads a packaging with its product
func (r *GormPackagingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductPackaging, error) {
	var packaging catalog.ProductPackaging
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&packaging, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &packaging, nil
}

// FindByEAN loads a packaging by its barcode
func (r *GormPackagingRepository) FindByEAN(ctx context.Context, ean string) (*catalog.ProductPackaging, error) {
	var packaging catalog.ProductPackaging
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("ean = ?", strings.TrimSpace(ean)).
		First(&packaging).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &packaging, nil
}

// FindAll returns all packagings with pagination
func (r *GormPackagingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductPackaging, int64, error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).Model(&catalog.ProductPackaging{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var packagings []catalog.ProductPackaging
	if err := query.
		Preload("Product").
		Order(filter.OrderBy + " " + strings.ToUpper(filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&packagings).Error; err != nil {
		return nil, 0, err
	}
	return packagings, total, nil
}

// Search matches packaging name case-insensitively or EAN by prefix
func (r *GormPackagingRepository) Search(ctx context.Context, query string, limit int) ([]catalog.ProductPackaging, error) {
	q := strings.TrimSpace(query)

	var packagings []catalog.ProductPackaging
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("LOWER(name) LIKE ? OR ean LIKE ?", "%"+strings.ToLower(q)+"%", q+"%").
		Order("name ASC").
		Limit(limit).
		Find(&packagings).Error; err != nil {
		return nil, err
	}
	return packagings, nil
}

// ExistsByEAN checks if a barcode is already registered
func (r *GormPackagingRepository) ExistsByEAN(ctx context.Context, ean string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductPackaging{}).
		Where("ean = ?", strings.TrimSpace(ean)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormPackagingRepository implements PackagingRepository
var _ catalog.PackagingRepository = (*GormPackagingRepository)(nil)
