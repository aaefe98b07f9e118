package catalog

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srkasse/backend/internal/domain/shared"
)

// Product is a tenant-owned catalog row. The identifying fields — tenant,
// both SKU renderings, the code components and the sequence — are assigned
// once at creation and never change; re-deriving a SKU for an existing
// product would break every external reference to it.
type Product struct {
	shared.TenantEntity
	HumanSKU        string           `gorm:"type:varchar(64);not null;index"`
	// Uniqueness of NumericSKU is per tenant; the composite unique index
	// (tenant_id, numeric_sku) lives in the schema migrations because the
	// tenant column belongs to the embedded TenantEntity
	NumericSKU      string           `gorm:"type:varchar(32);not null;index"`
	BrandCode       string           `gorm:"type:varchar(8);not null"`
	CategoryCode    string           `gorm:"type:varchar(8);not null;index:idx_product_tenant_key,priority:2"`
	SubcategoryCode string           `gorm:"type:varchar(8);not null;index:idx_product_tenant_key,priority:3"`
	QuantityCode    string           `gorm:"type:varchar(8);not null"`
	Sequence        int              `gorm:"not null"`
	Slug            string           `gorm:"type:varchar(255)"`
	DisplayName     string           `gorm:"type:varchar(255);not null"`
	CountryCode     string           `gorm:"type:varchar(16)"`
	Note            string           `gorm:"type:varchar(512)"`
	Barcode         string           `gorm:"type:varchar(64);index"`
	UnitPrice       *decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// DisplayFields are the non-identifying attributes of a product
type DisplayFields struct {
	DisplayName string
	CountryCode string
	Note        string
	Barcode     string
	UnitPrice   *decimal.Decimal
}

// NewProduct assembles a product row from a composed SKU and its inputs.
// Code validation and sequence allocation have already happened by the time
// this runs; the constructor only guards the display fields.
func NewProduct(tenantID uuid.UUID, components Components, sku SKU, fields DisplayFields) (*Product, error) {
	name := strings.TrimSpace(fields.DisplayName)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product display name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product display name cannot exceed 255 characters")
	}

	return &Product{
		TenantEntity:    shared.NewTenantEntity(tenantID),
		HumanSKU:        sku.Human,
		NumericSKU:      sku.Numeric,
		BrandCode:       components.BrandCode,
		CategoryCode:    components.CategoryCode,
		SubcategoryCode: components.SubcategoryCode,
		QuantityCode:    components.QuantityCode,
		Sequence:        components.Sequence,
		Slug:            Slugify(name),
		DisplayName:     name,
		CountryCode:     strings.ToUpper(strings.TrimSpace(fields.CountryCode)),
		Note:            fields.Note,
		Barcode:         strings.TrimSpace(fields.Barcode),
		UnitPrice:       fields.UnitPrice,
	}, nil
}

// UpdateDisplayFields changes the non-identifying attributes only
func (p *Product) UpdateDisplayFields(fields DisplayFields) error {
	name := strings.TrimSpace(fields.DisplayName)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product display name cannot be empty")
	}
	p.DisplayName = name
	p.Slug = Slugify(name)
	p.CountryCode = strings.ToUpper(strings.TrimSpace(fields.CountryCode))
	p.Note = fields.Note
	p.Barcode = strings.TrimSpace(fields.Barcode)
	p.UnitPrice = fields.UnitPrice
	p.UpdatedAt = time.Now()
	return nil
}

// Slugify lowercases a display name and collapses every non-alphanumeric
// run into a single dash, trimming dashes at both ends
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
