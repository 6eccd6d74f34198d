package catalog

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPackaging is a purchasable unit of a product, e.g. a 5 kg bag
// of flour. Quantity is the amount of product one packaging unit holds,
// in the product's unit of measure. EAN is the optional barcode.
type ProductPackaging struct {
	shared.BaseAggregateRoot
	Name      string          `gorm:"type:varchar(100);not null"`
	EAN       *string         `gorm:"type:varchar(13);uniqueIndex"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (ProductPackaging) TableName() string {
	return "product_packagings"
}

// NewProductPackaging creates a packaging for a base product
func NewProductPackaging(name string, ean *string, quantity decimal.Decimal, productID uuid.UUID) (*ProductPackaging, error) {
	if err := validatePackagingName(name); err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Packaging product is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Packaging quantity must be positive")
	}
	ean, err := normalizeEAN(ean)
	if err != nil {
		return nil, err
	}

	return &ProductPackaging{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		EAN:               ean,
		Quantity:          quantity,
		ProductID:         productID,
	}, nil
}

// Update changes name, barcode and per-unit quantity
func (p *ProductPackaging) Update(name string, ean *string, quantity decimal.Decimal) error {
	if err := validatePackagingName(name); err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Packaging quantity must be positive")
	}
	ean, err := normalizeEAN(ean)
	if err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.EAN = ean
	p.Quantity = quantity
	p.Touch()
	p.IncrementVersion()
	return nil
}

func normalizeEAN(ean *string) (*string, error) {
	if ean == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*ean)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) != 13 {
		return nil, shared.NewDomainError("INVALID_EAN", "EAN must be exactly 13 digits")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return nil, shared.NewDomainError("INVALID_EAN", "EAN must contain only digits")
		}
	}
	if !validEANChecksum(trimmed) {
		return nil, shared.NewDomainError("INVALID_EAN", "EAN check digit does not match")
	}
	return &trimmed, nil
}

// validEANChecksum verifies the EAN-13 check digit: digits at even
// offsets weigh 1, odd offsets weigh 3, and the weighted sum of all 13
// digits must be a multiple of 10.
func validEANChecksum(ean string) bool {
	sum := 0
	for i := 0; i < len(ean); i++ {
		digit := int(ean[i] - '0')
		if i%2 == 1 {
			digit *= 3
		}
		sum += digit
	}
	return sum%10 == 0
}

func validatePackagingName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Packaging name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Packaging name cannot exceed 100 characters")
	}
	return nil
}
