package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database with the catalog schema. The pool
// is pinned to a single connection so every transaction sees the same
// in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&identity.Tenant{}, &catalog.Product{}, &catalog.SequenceCounter{}))
	// The composite unique index lives in the schema migrations in production
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_product_tenant_numeric_sku ON products (tenant_id, numeric_sku)",
	).Error)

	return db
}

func testTables() catalog.Tables {
	return catalog.Tables{
		Brands: []catalog.CodeMapEntry{
			{Code: "SUN", Label: "Sunrise Foods", Numeric: "101"},
			{Code: "MOON", Label: "Moonlight", Numeric: "102"},
		},
		Categories: []catalog.CategoryEntry{
			{
				CodeMapEntry: catalog.CodeMapEntry{Code: "BEV", Label: "Beverages", Numeric: "20"},
				Subcategories: []catalog.CodeMapEntry{
					{Code: "JUI", Label: "Juice", Numeric: "01"},
					{Code: "SOD", Label: "Soda", Numeric: "02"},
				},
			},
			{
				CodeMapEntry: catalog.CodeMapEntry{Code: "SNK", Label: "Snacks", Numeric: "21"},
				Subcategories: []catalog.CodeMapEntry{
					{Code: "CHP", Label: "Chips", Numeric: "06"},
				},
			},
		},
		Quantities: []catalog.CodeMapEntry{
			{Code: "500ML", Label: "500 ml", Numeric: "2"},
			{Code: "1L", Label: "1 litre", Numeric: "3"},
		},
	}
}

func newTestComposer(t *testing.T) *catalog.Composer {
	t.Helper()
	registry, err := catalog.NewRegistry(testTables())
	require.NoError(t, err)
	return catalog.NewComposer(registry)
}

func newTestScope(t *testing.T, tenantID uuid.UUID) identity.TenantScope {
	t.Helper()
	scope, err := identity.ResolveScope(identity.Principal{
		UserID:   uuid.New(),
		TenantID: tenantID,
		Username: "tester",
	}, nil)
	require.NoError(t, err)
	return scope
}
