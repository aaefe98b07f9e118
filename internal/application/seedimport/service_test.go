package seedimport

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	csvimport "github.com/srkasse/backend/internal/infrastructure/import"
	"github.com/srkasse/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedHeader = "tenant,brand_code,category_code,subcategory_code,quantity_code,sequence,numeric_sku,display_name,country_code,unit_price\n"

type importFixture struct {
	service  *Service
	tenants  identity.TenantRepository
	products catalog.ProductRepository
	counters catalog.SequenceAllocator
}

func newImportFixture(t *testing.T) *importFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&identity.Tenant{}, &catalog.Product{}, &catalog.SequenceCounter{}))
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_product_tenant_numeric_sku ON products (tenant_id, numeric_sku)",
	).Error)

	registry, err := catalog.NewRegistry(catalog.Tables{
		Brands: []catalog.CodeMapEntry{
			{Code: "SUN", Label: "Sunrise Foods", Numeric: "101"},
		},
		Categories: []catalog.CategoryEntry{
			{
				CodeMapEntry: catalog.CodeMapEntry{Code: "BEV", Label: "Beverages", Numeric: "20"},
				Subcategories: []catalog.CodeMapEntry{
					{Code: "JUI", Label: "Juice", Numeric: "01"},
				},
			},
		},
		Quantities: []catalog.CodeMapEntry{
			{Code: "1L", Label: "1 litre", Numeric: "3"},
		},
	})
	require.NoError(t, err)
	composer := catalog.NewComposer(registry)

	tenants := persistence.NewGormTenantRepository(db)
	products := persistence.NewGormProductRepository(db, composer)
	counters := persistence.NewGormSequenceAllocator(db)

	return &importFixture{
		service:  NewService(tenants, products, counters, composer),
		tenants:  tenants,
		products: products,
		counters: counters,
	}
}

func (f *importFixture) scopeFor(t *testing.T, tenantName string) identity.TenantScope {
	t.Helper()
	tenant, err := f.tenants.FindByName(context.Background(), tenantName)
	require.NoError(t, err)
	scope, err := identity.ResolveScope(identity.Principal{
		UserID:   uuid.New(),
		TenantID: tenant.ID,
	}, nil)
	require.NoError(t, err)
	return scope
}

func TestService_ImportFromReader(t *testing.T) {
	ctx := context.Background()

	t.Run("creates tenants and products from the source", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader +
			"Corner Shop,SUN,BEV,JUI,1L,7,101200130007,Orange Juice,DE,1.99\n" +
			"Airport Kiosk,SUN,BEV,JUI,1L,2,,Apple Juice,,\n"

		result, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalRows)
		assert.Equal(t, 2, result.ImportedRows)
		assert.Zero(t, result.ErrorRows)

		scope := f.scopeFor(t, "Corner Shop")
		product, err := f.products.FindByNumericSKU(ctx, scope, "101200130007")
		require.NoError(t, err)
		assert.Equal(t, "Orange Juice", product.DisplayName)
		assert.Equal(t, "SUN-BEV-JUI-1L-0007", product.HumanSKU)
		assert.Equal(t, 7, product.Sequence)
		assert.Equal(t, "DE", product.CountryCode)
		require.NotNil(t, product.UnitPrice)
		assert.Equal(t, "1.99", product.UnitPrice.String())

		// The second tenant got its own row under its own scope
		other := f.scopeFor(t, "Airport Kiosk")
		_, err = f.products.FindByNumericSKU(ctx, other, "101200130002")
		require.NoError(t, err)
		_, err = f.products.FindByNumericSKU(ctx, other, "101200130007")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("live allocation continues past imported sequences", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader + "Corner Shop,SUN,BEV,JUI,1L,7,,Orange Juice,,\n"

		_, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)

		scope := f.scopeFor(t, "Corner Shop")
		product, err := f.products.Create(ctx, scope,
			catalog.CodeComponents{BrandCode: "SUN", CategoryCode: "BEV", SubcategoryCode: "JUI", QuantityCode: "1L"},
			catalog.DisplayFields{DisplayName: "Mango Juice"})
		require.NoError(t, err)
		assert.Equal(t, 8, product.Sequence)
	})

	t.Run("a second run over the same source changes nothing", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader +
			"Corner Shop,SUN,BEV,JUI,1L,7,,Orange Juice,,\n" +
			"Corner Shop,SUN,BEV,JUI,1L,8,,Apple Juice,,\n"

		first, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		assert.Equal(t, 2, first.ImportedRows)

		second, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		assert.Zero(t, second.ImportedRows)
		assert.Equal(t, 2, second.SkippedRows)
		assert.Zero(t, second.ErrorRows)

		current, err := f.counters.Current(ctx, mustTenantID(t, f, "Corner Shop"), "BEV", "JUI")
		require.NoError(t, err)
		assert.Equal(t, 8, current)
	})

	t.Run("update mode overwrites display fields on collision", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader + "Corner Shop,SUN,BEV,JUI,1L,7,,Orange Juice,,\n"
		_, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)

		changed := seedHeader + "Corner Shop,SUN,BEV,JUI,1L,7,,Orange Juice Fresh,AT,\n"
		result, err := f.service.ImportFromReader(ctx, strings.NewReader(changed),
			Options{ConflictMode: ConflictModeUpdate})
		require.NoError(t, err)
		assert.Equal(t, 1, result.UpdatedRows)

		scope := f.scopeFor(t, "Corner Shop")
		product, err := f.products.FindByNumericSKU(ctx, scope, "101200130007")
		require.NoError(t, err)
		assert.Equal(t, "Orange Juice Fresh", product.DisplayName)
		assert.Equal(t, "AT", product.CountryCode)
		// Identity is untouched
		assert.Equal(t, 7, product.Sequence)
		assert.Equal(t, "SUN-BEV-JUI-1L-0007", product.HumanSKU)
	})

	t.Run("a stale numeric SKU in the source is an error row", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader + "Corner Shop,SUN,BEV,JUI,1L,7,101200130099,Orange Juice,,\n"

		result, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		assert.Zero(t, result.ImportedRows)
		require.Equal(t, 1, result.ErrorRows)
		assert.Equal(t, "numeric_sku", result.Errors[0].Column)
		assert.Equal(t, csvimport.ErrCodeImportInvalidFormat, result.Errors[0].Code)
		assert.Equal(t, 2, result.Errors[0].Row)
	})

	t.Run("an unknown code is an error row", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader + "Corner Shop,XXX,BEV,JUI,1L,7,,Orange Juice,,\n"

		result, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		require.Equal(t, 1, result.ErrorRows)
		assert.Equal(t, csvimport.ErrCodeImportInvalidCode, result.Errors[0].Code)
	})

	t.Run("a non-positive sequence is an error row", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader +
			"Corner Shop,SUN,BEV,JUI,1L,0,,Orange Juice,,\n" +
			"Corner Shop,SUN,BEV,JUI,1L,abc,,Apple Juice,,\n"

		result, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		assert.Equal(t, 2, result.ErrorRows)
		for _, rowErr := range result.Errors {
			assert.Equal(t, "sequence", rowErr.Column)
		}
	})

	t.Run("error rows do not abort the rest of the run", func(t *testing.T) {
		f := newImportFixture(t)
		source := seedHeader +
			"Corner Shop,XXX,BEV,JUI,1L,1,,Bad Brand,,\n" +
			"Corner Shop,SUN,BEV,JUI,1L,2,,Apple Juice,,\n"

		result, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.ErrorRows)
		assert.Equal(t, 1, result.ImportedRows)
	})

	t.Run("missing required columns abort before any row", func(t *testing.T) {
		f := newImportFixture(t)
		source := "tenant,brand_code,display_name\nCorner Shop,SUN,Orange Juice\n"

		_, err := f.service.ImportFromReader(ctx, strings.NewReader(source), Options{})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MISSING_COLUMNS", domainErr.Code)
	})

	t.Run("rejects an unknown conflict mode", func(t *testing.T) {
		f := newImportFixture(t)
		_, err := f.service.ImportFromReader(ctx, strings.NewReader(seedHeader),
			Options{ConflictMode: "merge"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CONFLICT_MODE", domainErr.Code)
	})

	t.Run("a broken stream is counted as an error row", func(t *testing.T) {
		f := newImportFixture(t)
		// Pad with blank rows so the parser's initial encoding peek is
		// satisfied before the stream breaks
		source := seedHeader +
			"Corner Shop,SUN,BEV,JUI,1L,1,,Orange Juice,,\n" +
			strings.Repeat(",,,,,,,,,\n", 500)
		broken := io.MultiReader(strings.NewReader(source), &failingReader{})

		result, err := f.service.ImportFromReader(ctx, broken, Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.ImportedRows)
		require.Equal(t, 1, result.ErrorRows)
		assert.Equal(t, csvimport.ErrCodeImportCSVParsing, result.Errors[0].Code)
	})

	t.Run("a cancelled context stops at a row boundary", func(t *testing.T) {
		f := newImportFixture(t)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		source := seedHeader + "Corner Shop,SUN,BEV,JUI,1L,1,,Orange Juice,,\n"
		result, err := f.service.ImportFromReader(cancelled, strings.NewReader(source), Options{})
		assert.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, result)
		assert.Zero(t, result.ImportedRows)
	})
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read: connection reset")
}

func mustTenantID(t *testing.T, f *importFixture, name string) uuid.UUID {
	t.Helper()
	tenant, err := f.tenants.FindByName(context.Background(), name)
	require.NoError(t, err)
	return tenant.ID
}
