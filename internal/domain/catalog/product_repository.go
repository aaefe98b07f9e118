package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
)

// CodeComponents identifies the code cell a product is created in
type CodeComponents struct {
	BrandCode       string
	CategoryCode    string
	SubcategoryCode string
	QuantityCode    string
}

// ProductRepository is the only path to persistent product data. Every
// operation takes a TenantScope resolved from a verified principal; rows
// belonging to other tenants are invisible, and a missing row and a
// foreign-tenant row are indistinguishable to the caller.
type ProductRepository interface {
	// Create allocates the next sequence for (scope.tenant, category,
	// subcategory), composes both SKU renderings and inserts the row, all
	// inside one transaction. A failure anywhere rolls back everything
	// including the counter advance.
	Create(ctx context.Context, scope identity.TenantScope, codes CodeComponents, fields DisplayFields) (*Product, error)

	// Restore inserts a fully composed product row carrying an externally
	// pre-issued sequence and raises the matching sequence counter to at
	// least that sequence, in one transaction. An existing numeric SKU for
	// the tenant yields ErrDuplicateSKU.
	Restore(ctx context.Context, scope identity.TenantScope, product *Product) error

	// FindByID returns the product if it exists within the scope's tenant
	FindByID(ctx context.Context, scope identity.TenantScope, id uuid.UUID) (*Product, error)

	// FindByNumericSKU returns the product with the given numeric SKU
	// within the scope's tenant
	FindByNumericSKU(ctx context.Context, scope identity.TenantScope, numericSKU string) (*Product, error)

	// List returns the scope's products matching the filter
	List(ctx context.Context, scope identity.TenantScope, filter shared.Filter) ([]Product, error)

	// Count counts the scope's products matching the filter
	Count(ctx context.Context, scope identity.TenantScope, filter shared.Filter) (int64, error)

	// Update persists changes to a product's non-identifying fields
	Update(ctx context.Context, scope identity.TenantScope, product *Product) error
}
