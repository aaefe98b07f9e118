package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	"github.com/srkasse/backend/internal/infrastructure/persistence/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	composer := newTestComposer(t)
	repo := NewGormProductRepository(db, composer)
	allocator := NewGormSequenceAllocator(db)
	ctx := context.Background()

	tenantID := uuid.New()
	scope := newTestScope(t, tenantID)
	codes := catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"}

	t.Run("assigns consecutive sequences per key", func(t *testing.T) {
		first, err := repo.Create(ctx, scope, codes, catalog.DisplayFields{DisplayName: "Orange Juice"})
		require.NoError(t, err)
		second, err := repo.Create(ctx, scope, codes, catalog.DisplayFields{DisplayName: "Apple Juice"})
		require.NoError(t, err)

		assert.Equal(t, 1, first.Sequence)
		assert.Equal(t, 2, second.Sequence)
		assert.Equal(t, "SUN-BEV-JUI-1L-0001", first.HumanSKU)
		assert.Equal(t, "101200130001", first.NumericSKU)
		assert.NotEqual(t, first.NumericSKU, second.NumericSKU)
	})

	t.Run("a different key starts its own sequence", func(t *testing.T) {
		other := catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "SNK", SubcategoryCode: "CHP", QuantityCode: "500ML"}
		product, err := repo.Create(ctx, scope, other, catalog.DisplayFields{DisplayName: "Paprika Chips"})
		require.NoError(t, err)
		assert.Equal(t, 1, product.Sequence)
	})

	t.Run("tenants hold independent sequence spaces", func(t *testing.T) {
		otherScope := newTestScope(t, uuid.New())
		product, err := repo.Create(ctx, otherScope, codes, catalog.DisplayFields{DisplayName: "Orange Juice"})
		require.NoError(t, err)

		// Same codes, same sequence, same numeric SKU as the first tenant's
		// first product; the per-tenant unique index permits it
		assert.Equal(t, 1, product.Sequence)
		assert.Equal(t, "101200130001", product.NumericSKU)
	})

	t.Run("rejects unknown codes before touching the counter", func(t *testing.T) {
		bad := catalog.CodeComponents{BrandCode: "NOPE", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"}
		_, err := repo.Create(ctx, scope, bad, catalog.DisplayFields{DisplayName: "Ghost"})
		assert.ErrorIs(t, err, catalog.ErrInvalidCode)

		current, err := allocator.Current(ctx, tenantID, "BEV", "JUI")
		require.NoError(t, err)
		assert.Equal(t, 2, current)
	})

	t.Run("a failed insert rolls the counter back with it", func(t *testing.T) {
		before, err := allocator.Current(ctx, tenantID, "BEV", "JUI")
		require.NoError(t, err)

		_, err = repo.Create(ctx, scope, codes, catalog.DisplayFields{DisplayName: "   "})
		assert.Error(t, err)

		after, err := allocator.Current(ctx, tenantID, "BEV", "JUI")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("rejects an unresolved scope", func(t *testing.T) {
		_, err := repo.Create(ctx, identity.TenantScope{}, codes, catalog.DisplayFields{DisplayName: "Orange Juice"})
		assert.ErrorIs(t, err, tenant.ErrScopeRequired)
	})
}

func TestGormProductRepository_Find(t *testing.T) {
	db := setupTestDB(t)
	composer := newTestComposer(t)
	repo := NewGormProductRepository(db, composer)
	ctx := context.Background()

	scope := newTestScope(t, uuid.New())
	otherScope := newTestScope(t, uuid.New())
	codes := catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"}

	created, err := repo.Create(ctx, scope, codes, catalog.DisplayFields{DisplayName: "Orange Juice"})
	require.NoError(t, err)

	t.Run("finds a product by ID within the tenant", func(t *testing.T) {
		found, err := repo.FindByID(ctx, scope, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.NumericSKU, found.NumericSKU)
	})

	t.Run("a foreign tenant's row is indistinguishable from a missing one", func(t *testing.T) {
		_, err := repo.FindByID(ctx, otherScope, created.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByID(ctx, scope, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("finds a product by numeric SKU within the tenant", func(t *testing.T) {
		found, err := repo.FindByNumericSKU(ctx, scope, created.NumericSKU)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = repo.FindByNumericSKU(ctx, otherScope, created.NumericSKU)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_List(t *testing.T) {
	db := setupTestDB(t)
	composer := newTestComposer(t)
	repo := NewGormProductRepository(db, composer)
	ctx := context.Background()

	scope := newTestScope(t, uuid.New())
	juice := catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"}
	chips := catalog.CodeComponents{BrandCode: "MOON", CategoryCode: "SNK", SubcategoryCode: "CHP", QuantityCode: "500ML"}

	names := []string{"Orange Juice", "Apple Juice", "Mango Juice"}
	for _, name := range names {
		_, err := repo.Create(ctx, scope, juice, catalog.DisplayFields{DisplayName: name})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, scope, chips, catalog.DisplayFields{DisplayName: "Paprika Chips", Barcode: "4001"})
	require.NoError(t, err)

	// A second tenant's rows must never show up
	otherScope := newTestScope(t, uuid.New())
	_, err = repo.Create(ctx, otherScope, juice, catalog.DisplayFields{DisplayName: "Foreign Juice", Barcode: "7355608"})
	require.NoError(t, err)

	t.Run("lists only the scope's products", func(t *testing.T) {
		products, err := repo.List(ctx, scope, shared.Filter{})
		require.NoError(t, err)
		assert.Len(t, products, 4)

		count, err := repo.Count(ctx, scope, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("defaults to code-cell then sequence order", func(t *testing.T) {
		products, err := repo.List(ctx, scope, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "Orange Juice", products[0].DisplayName)
		assert.Equal(t, "Apple Juice", products[1].DisplayName)
		assert.Equal(t, "Mango Juice", products[2].DisplayName)
		assert.Equal(t, "Paprika Chips", products[3].DisplayName)
	})

	t.Run("orders by an allowed column", func(t *testing.T) {
		products, err := repo.List(ctx, scope, shared.Filter{OrderBy: "display_name", OrderDir: "asc"})
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "Apple Juice", products[0].DisplayName)
		assert.Equal(t, "Paprika Chips", products[3].DisplayName)
	})

	t.Run("an order expression outside the allowlist falls back to the default order", func(t *testing.T) {
		// A raw expression in ORDER BY could flip the result order on a
		// predicate over other tenants' rows, turning ordering into a
		// cross-tenant oracle; it must never reach SQL
		injected := "(CASE WHEN EXISTS (SELECT 1 FROM products p2 WHERE p2.barcode = '7355608') THEN sequence ELSE -sequence END)"
		products, err := repo.List(ctx, scope, shared.Filter{OrderBy: injected})
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "Orange Juice", products[0].DisplayName)
		assert.Equal(t, "Apple Juice", products[1].DisplayName)
		assert.Equal(t, "Mango Juice", products[2].DisplayName)
		assert.Equal(t, "Paprika Chips", products[3].DisplayName)
	})

	t.Run("filters by category", func(t *testing.T) {
		filter := shared.Filter{Filters: map[string]interface{}{"category_code": "SNK"}}
		products, err := repo.List(ctx, scope, filter)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Paprika Chips", products[0].DisplayName)
	})

	t.Run("searches across name and SKUs", func(t *testing.T) {
		products, err := repo.List(ctx, scope, shared.Filter{Search: "Mango"})
		require.NoError(t, err)
		require.Len(t, products, 1)

		products, err = repo.List(ctx, scope, shared.Filter{Search: "101200130001"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Orange Juice", products[0].DisplayName)
	})

	t.Run("filters by barcode presence", func(t *testing.T) {
		filter := shared.Filter{Filters: map[string]interface{}{"has_barcode": true}}
		products, err := repo.List(ctx, scope, filter)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Paprika Chips", products[0].DisplayName)
	})

	t.Run("paginates", func(t *testing.T) {
		page1, err := repo.List(ctx, scope, shared.Filter{Page: 1, PageSize: 3})
		require.NoError(t, err)
		page2, err := repo.List(ctx, scope, shared.Filter{Page: 2, PageSize: 3})
		require.NoError(t, err)

		assert.Len(t, page1, 3)
		assert.Len(t, page2, 1)
	})
}

func TestGormProductRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	composer := newTestComposer(t)
	repo := NewGormProductRepository(db, composer)
	ctx := context.Background()

	scope := newTestScope(t, uuid.New())
	codes := catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"}
	created, err := repo.Create(ctx, scope, codes, catalog.DisplayFields{DisplayName: "Orange Juice"})
	require.NoError(t, err)

	t.Run("persists display field changes", func(t *testing.T) {
		require.NoError(t, created.UpdateDisplayFields(catalog.DisplayFields{
			DisplayName: "Blood Orange Juice",
			CountryCode: "it",
		}))
		require.NoError(t, repo.Update(ctx, scope, created))

		found, err := repo.FindByID(ctx, scope, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Blood Orange Juice", found.DisplayName)
		assert.Equal(t, "blood-orange-juice", found.Slug)
		assert.Equal(t, "IT", found.CountryCode)
	})

	t.Run("never writes identifying fields", func(t *testing.T) {
		tampered := *created
		tampered.Sequence = 99
		tampered.NumericSKU = "999999999999"
		require.NoError(t, repo.Update(ctx, scope, &tampered))

		found, err := repo.FindByID(ctx, scope, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, found.Sequence)
		assert.Equal(t, "101200130001", found.NumericSKU)
	})

	t.Run("a foreign tenant cannot update the row", func(t *testing.T) {
		otherScope := newTestScope(t, uuid.New())
		err := repo.Update(ctx, otherScope, created)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_Restore(t *testing.T) {
	db := setupTestDB(t)
	composer := newTestComposer(t)
	repo := NewGormProductRepository(db, composer)
	allocator := NewGormSequenceAllocator(db)
	ctx := context.Background()

	tenantID := uuid.New()
	scope := newTestScope(t, tenantID)

	restored := func(t *testing.T, seq int) *catalog.Product {
		t.Helper()
		sku, err := composer.Compose("SUN", "BEV", "JUI", "1L", seq)
		require.NoError(t, err)
		product, err := catalog.NewProduct(tenantID, catalog.Components{
			BrandCode:       "SUN",
			CategoryCode:    "BEV",
			SubcategoryCode: "JUI",
			QuantityCode:    "1L",
			Sequence:        seq,
		}, sku, catalog.DisplayFields{DisplayName: "Restored Juice"})
		require.NoError(t, err)
		return product
	}

	t.Run("inserts a pre-issued row and raises the counter", func(t *testing.T) {
		require.NoError(t, repo.Restore(ctx, scope, restored(t, 17)))

		current, err := allocator.Current(ctx, tenantID, "BEV", "JUI")
		require.NoError(t, err)
		assert.Equal(t, 17, current)

		// Live allocation continues past the restored sequence
		codes := catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"}
		next, err := repo.Create(ctx, scope, codes, catalog.DisplayFields{DisplayName: "Fresh Juice"})
		require.NoError(t, err)
		assert.Equal(t, 18, next.Sequence)
	})

	t.Run("an existing numeric SKU yields ErrDuplicateSKU", func(t *testing.T) {
		err := repo.Restore(ctx, scope, restored(t, 17))
		assert.ErrorIs(t, err, catalog.ErrDuplicateSKU)
	})

	t.Run("rejects a product owned by another tenant", func(t *testing.T) {
		otherScope := newTestScope(t, uuid.New())
		err := repo.Restore(ctx, otherScope, restored(t, 20))
		assert.ErrorIs(t, err, identity.ErrTenantMismatch)
	})
}
