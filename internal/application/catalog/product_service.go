package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	"github.com/srkasse/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// maxCreateRetries bounds the retries on allocation contention. Each attempt
// runs a fresh transaction, so a retry allocates a new sequence.
const maxCreateRetries = 3

// ProductService orchestrates product operations. Every method resolves a
// TenantScope from the verified principal before anything touches the store;
// a declared tenant identifier may corroborate the principal's tenant but
// never substitutes for it.
type ProductService struct {
	products catalog.ProductRepository
	composer *catalog.Composer
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, composer *catalog.Composer) *ProductService {
	return &ProductService{
		products: products,
		composer: composer,
	}
}

// Create creates a product with a freshly allocated sequence. Transient
// allocation conflicts are retried a bounded number of times; a duplicate SKU
// after a fresh allocation means the counter has desynchronized from the
// stored rows and is surfaced loudly.
func (s *ProductService) Create(ctx context.Context, principal identity.Principal, declared *uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	scope, err := identity.ResolveScope(principal, declared)
	if err != nil {
		return nil, err
	}

	codes := catalog.CodeComponents{
		BrandCode:       req.BrandCode,
		CategoryCode:    req.CategoryCode,
		SubcategoryCode: req.SubcategoryCode,
		QuantityCode:    req.QuantityCode,
	}
	fields := catalog.DisplayFields{
		DisplayName: req.DisplayName,
		CountryCode: req.CountryCode,
		Note:        req.Note,
		Barcode:     req.Barcode,
		UnitPrice:   req.UnitPrice,
	}

	var product *catalog.Product
	for attempt := 1; ; attempt++ {
		product, err = s.products.Create(ctx, scope, codes, fields)
		if err == nil {
			break
		}
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			logger.L(ctx).Error("sequence counter desynchronized from stored rows",
				zap.String("tenant_id", scope.TenantID().String()),
				zap.String("category_code", codes.CategoryCode),
				zap.String("subcategory_code", codes.SubcategoryCode),
				zap.Error(err),
			)
			return nil, err
		}
		if errors.Is(err, catalog.ErrSequenceConflict) && attempt < maxCreateRetries {
			logger.L(ctx).Warn("retrying product create after allocation conflict",
				zap.Int("attempt", attempt),
				zap.String("category_code", codes.CategoryCode),
				zap.String("subcategory_code", codes.SubcategoryCode),
			)
			continue
		}
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// Get returns a product by ID within the caller's tenant
func (s *ProductService) Get(ctx context.Context, principal identity.Principal, declared *uuid.UUID, id uuid.UUID) (*ProductResponse, error) {
	scope, err := identity.ResolveScope(principal, declared)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByNumericSKU returns a product by numeric SKU within the caller's tenant
func (s *ProductService) GetByNumericSKU(ctx context.Context, principal identity.Principal, declared *uuid.UUID, numericSKU string) (*ProductResponse, error) {
	scope, err := identity.ResolveScope(principal, declared)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByNumericSKU(ctx, scope, numericSKU)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List returns the caller's products matching the filter
func (s *ProductService) List(ctx context.Context, principal identity.Principal, declared *uuid.UUID, req ListProductsRequest) (*ProductListResponse, error) {
	scope, err := identity.ResolveScope(principal, declared)
	if err != nil {
		return nil, err
	}

	filter := s.buildFilter(req)
	products, err := s.products.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.products.Count(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = toProductResponse(&products[i])
	}
	resp := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &resp, nil
}

// Update changes a product's non-identifying display fields. The tenant and
// both SKU renderings stay as assigned at creation.
func (s *ProductService) Update(ctx context.Context, principal identity.Principal, declared *uuid.UUID, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	scope, err := identity.ResolveScope(principal, declared)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateDisplayFields(catalog.DisplayFields{
		DisplayName: req.DisplayName,
		CountryCode: req.CountryCode,
		Note:        req.Note,
		Barcode:     req.Barcode,
		UnitPrice:   req.UnitPrice,
	}); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, scope, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Decompose recovers code components and sequence from a numeric SKU. Pure
// registry computation, no tenant involved.
func (s *ProductService) Decompose(numericSKU string) (*ComponentsResponse, error) {
	components, err := s.composer.Decompose(numericSKU)
	if err != nil {
		return nil, err
	}
	return &ComponentsResponse{
		BrandCode:       components.BrandCode,
		CategoryCode:    components.CategoryCode,
		SubcategoryCode: components.SubcategoryCode,
		QuantityCode:    components.QuantityCode,
		Sequence:        components.Sequence,
	}, nil
}

// exportHeader is the column order of the CSV export, matching the seed
// source format so an export can round-trip through the importer
var exportHeader = []string{
	"human_sku", "numeric_sku", "brand_code", "category_code",
	"subcategory_code", "quantity_code", "sequence", "slug",
	"display_name", "country_code", "note", "barcode", "unit_price",
}

// ExportCSV writes the caller's full SKU list as CSV
func (s *ProductService) ExportCSV(ctx context.Context, principal identity.Principal, declared *uuid.UUID, w io.Writer) error {
	scope, err := identity.ResolveScope(principal, declared)
	if err != nil {
		return err
	}

	products, err := s.products.List(ctx, scope, shared.Filter{})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for i := range products {
		p := &products[i]
		unitPrice := ""
		if p.UnitPrice != nil {
			unitPrice = p.UnitPrice.String()
		}
		record := []string{
			p.HumanSKU, p.NumericSKU, p.BrandCode, p.CategoryCode,
			p.SubcategoryCode, p.QuantityCode, strconv.Itoa(p.Sequence), p.Slug,
			p.DisplayName, p.CountryCode, p.Note, p.Barcode, unitPrice,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ProductService) buildFilter(req ListProductsRequest) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 && req.PageSize <= 500 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search
	filter.OrderBy = req.OrderBy
	filter.OrderDir = req.OrderDir

	if req.BrandCode != "" {
		filter.Filters["brand_code"] = req.BrandCode
	}
	if req.CategoryCode != "" {
		filter.Filters["category_code"] = req.CategoryCode
	}
	if req.SubcategoryCode != "" {
		filter.Filters["subcategory_code"] = req.SubcategoryCode
	}
	return filter
}
