package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/shared"
)

// CreateProductRequest carries the inputs for an atomic product create
type CreateProductRequest struct {
	BrandCode       string           `json:"brand_code" binding:"required,skucode"`
	CategoryCode    string           `json:"category_code" binding:"required,skucode"`
	SubcategoryCode string           `json:"subcategory_code" binding:"required,skucode"`
	QuantityCode    string           `json:"quantity_code" binding:"required,skucode"`
	DisplayName     string           `json:"display_name" binding:"required,max=255"`
	CountryCode     string           `json:"country_code,omitempty" binding:"omitempty,max=16"`
	Note            string           `json:"note,omitempty" binding:"omitempty,max=512"`
	Barcode         string           `json:"barcode,omitempty" binding:"omitempty,max=64"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
}

// UpdateProductRequest carries the mutable display fields of a product
type UpdateProductRequest struct {
	DisplayName string           `json:"display_name" binding:"required,max=255"`
	CountryCode string           `json:"country_code,omitempty" binding:"omitempty,max=16"`
	Note        string           `json:"note,omitempty" binding:"omitempty,max=512"`
	Barcode     string           `json:"barcode,omitempty" binding:"omitempty,max=64"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// ListProductsRequest carries list filtering and pagination options
type ListProductsRequest struct {
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	Search          string `form:"search"`
	BrandCode       string `form:"brand_code"`
	CategoryCode    string `form:"category_code"`
	SubcategoryCode string `form:"subcategory_code"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir"`
}

// ProductResponse is the outward representation of a product
type ProductResponse struct {
	ID              uuid.UUID        `json:"id"`
	TenantID        uuid.UUID        `json:"tenant_id"`
	HumanSKU        string           `json:"human_sku"`
	NumericSKU      string           `json:"numeric_sku"`
	BrandCode       string           `json:"brand_code"`
	CategoryCode    string           `json:"category_code"`
	SubcategoryCode string           `json:"subcategory_code"`
	QuantityCode    string           `json:"quantity_code"`
	Sequence        int              `json:"sequence"`
	Slug            string           `json:"slug"`
	DisplayName     string           `json:"display_name"`
	CountryCode     string           `json:"country_code,omitempty"`
	Note            string           `json:"note,omitempty"`
	Barcode         string           `json:"barcode,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ProductListResponse is a paginated list of products
type ProductListResponse = shared.Paginated[ProductResponse]

// ComponentsResponse is the decomposition of a numeric SKU
type ComponentsResponse struct {
	BrandCode       string `json:"brand_code"`
	CategoryCode    string `json:"category_code"`
	SubcategoryCode string `json:"subcategory_code"`
	QuantityCode    string `json:"quantity_code"`
	Sequence        int    `json:"sequence"`
}

// CodeEntryResponse is one code map entry
type CodeEntryResponse struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Numeric string `json:"numeric"`
}

// CategoryEntryResponse is a category entry with its subcategories
type CategoryEntryResponse struct {
	Code          string              `json:"code"`
	Label         string              `json:"label"`
	Numeric       string              `json:"numeric"`
	Subcategories []CodeEntryResponse `json:"subcategories"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		TenantID:        p.TenantID,
		HumanSKU:        p.HumanSKU,
		NumericSKU:      p.NumericSKU,
		BrandCode:       p.BrandCode,
		CategoryCode:    p.CategoryCode,
		SubcategoryCode: p.SubcategoryCode,
		QuantityCode:    p.QuantityCode,
		Sequence:        p.Sequence,
		Slug:            p.Slug,
		DisplayName:     p.DisplayName,
		CountryCode:     p.CountryCode,
		Note:            p.Note,
		Barcode:         p.Barcode,
		UnitPrice:       p.UnitPrice,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
