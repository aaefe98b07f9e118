package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	"github.com/srkasse/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM.
// Every read goes through the tenant-scoped handle, so a row from another
// tenant is indistinguishable from a missing row.
type GormProductRepository struct {
	db        *gorm.DB
	composer  *catalog.Composer
	allocator *GormSequenceAllocator
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB, composer *catalog.Composer) *GormProductRepository {
	return &GormProductRepository{
		db:        db,
		composer:  composer,
		allocator: NewGormSequenceAllocator(db),
	}
}

// Create allocates the next sequence, composes both SKU renderings and
// inserts the product inside one transaction. The counter advance and the
// insert commit or roll back together, so a failed insert leaves no gap in
// the sequence.
func (r *GormProductRepository) Create(ctx context.Context, scope identity.TenantScope, codes catalog.CodeComponents, fields catalog.DisplayFields) (*catalog.Product, error) {
	if err := r.composer.ValidateCodes(codes.BrandCode, codes.CategoryCode, codes.SubcategoryCode, codes.QuantityCode); err != nil {
		return nil, err
	}

	var product *catalog.Product
	err := tenant.Transaction(r.db.WithContext(ctx), scope, func(tx *gorm.DB, scoped *gorm.DB) error {
		seq, err := r.allocator.AllocateTx(tx, scope.TenantID(), codes.CategoryCode, codes.SubcategoryCode)
		if err != nil {
			return err
		}

		sku, err := r.composer.Compose(codes.BrandCode, codes.CategoryCode, codes.SubcategoryCode, codes.QuantityCode, seq)
		if err != nil {
			return err
		}

		components := catalog.Components{
			BrandCode:       codes.BrandCode,
			CategoryCode:    codes.CategoryCode,
			SubcategoryCode: codes.SubcategoryCode,
			QuantityCode:    codes.QuantityCode,
			Sequence:        seq,
		}
		product, err = catalog.NewProduct(scope.TenantID(), components, sku, fields)
		if err != nil {
			return err
		}

		if err := tx.Create(product).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("numeric SKU %s already exists: %w", sku.Numeric, catalog.ErrDuplicateSKU)
			}
			return mapConflict(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Restore inserts an externally pre-issued product row and raises the
// matching counter in one transaction, so a restored sequence can never be
// reissued by a later live allocation.
func (r *GormProductRepository) Restore(ctx context.Context, scope identity.TenantScope, product *catalog.Product) error {
	if product.TenantID != scope.TenantID() {
		return fmt.Errorf("product tenant %s does not match scope: %w", product.TenantID, identity.ErrTenantMismatch)
	}
	return tenant.Transaction(r.db.WithContext(ctx), scope, func(tx *gorm.DB, scoped *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("numeric SKU %s already exists: %w", product.NumericSKU, catalog.ErrDuplicateSKU)
			}
			return mapConflict(err)
		}
		return AdvanceToTx(tx, scope.TenantID(), product.CategoryCode, product.SubcategoryCode, product.Sequence)
	})
}

// FindByID returns the product if it exists within the scope's tenant
func (r *GormProductRepository) FindByID(ctx context.Context, scope identity.TenantScope, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := tenant.Scoped(r.db.WithContext(ctx), scope).
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByNumericSKU returns the product with the given numeric SKU within the
// scope's tenant
func (r *GormProductRepository) FindByNumericSKU(ctx context.Context, scope identity.TenantScope, numericSKU string) (*catalog.Product, error) {
	var product catalog.Product
	if err := tenant.Scoped(r.db.WithContext(ctx), scope).
		First(&product, "numeric_sku = ?", numericSKU).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns the scope's products matching the filter
func (r *GormProductRepository) List(ctx context.Context, scope identity.TenantScope, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := tenant.Scoped(r.db.WithContext(ctx), scope).Model(&catalog.Product{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts the scope's products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, scope identity.TenantScope, filter shared.Filter) (int64, error) {
	var count int64
	query := tenant.Scoped(r.db.WithContext(ctx), scope).Model(&catalog.Product{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update persists changes to a product's non-identifying fields
func (r *GormProductRepository) Update(ctx context.Context, scope identity.TenantScope, product *catalog.Product) error {
	result := tenant.Scoped(r.db.WithContext(ctx), scope).
		Model(&catalog.Product{}).
		Where("id = ?", product.ID).
		Select("display_name", "slug", "country_code", "note", "barcode", "unit_price", "updated_at").
		Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// sortableColumns is the closed set of columns a caller may order by. The
// order_by parameter is caller input and must never reach SQL verbatim.
var sortableColumns = map[string]struct{}{
	"human_sku":        {},
	"numeric_sku":      {},
	"brand_code":       {},
	"category_code":    {},
	"subcategory_code": {},
	"quantity_code":    {},
	"sequence":         {},
	"slug":             {},
	"display_name":     {},
	"country_code":     {},
	"barcode":          {},
	"created_at":       {},
	"updated_at":       {},
}

// applyFilter applies filter options to the query
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if _, ok := sortableColumns[filter.OrderBy]; ok {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("category_code ASC, subcategory_code ASC, sequence ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("display_name LIKE ? OR human_sku LIKE ? OR numeric_sku LIKE ? OR barcode LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "brand_code":
			query = query.Where("brand_code = ?", value)
		case "category_code":
			query = query.Where("category_code = ?", value)
		case "subcategory_code":
			query = query.Where("subcategory_code = ?", value)
		case "quantity_code":
			query = query.Where("quantity_code = ?", value)
		case "country_code":
			query = query.Where("country_code = ?", value)
		case "has_barcode":
			if value == true {
				query = query.Where("barcode IS NOT NULL AND barcode != ''")
			} else {
				query = query.Where("barcode IS NULL OR barcode = ''")
			}
		}
	}

	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
