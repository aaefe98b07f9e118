package catalog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, scope identity.TenantScope, codes catalog.CodeComponents, fields catalog.DisplayFields) (*catalog.Product, error) {
	args := m.Called(ctx, scope, codes, fields)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Restore(ctx context.Context, scope identity.TenantScope, product *catalog.Product) error {
	args := m.Called(ctx, scope, product)
	return args.Error(0)
}

func (m *mockProductRepository) FindByID(ctx context.Context, scope identity.TenantScope, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, scope, id)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) FindByNumericSKU(ctx context.Context, scope identity.TenantScope, numericSKU string) (*catalog.Product, error) {
	args := m.Called(ctx, scope, numericSKU)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, scope identity.TenantScope, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, scope, filter)
	if p := args.Get(0); p != nil {
		return p.([]catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Count(ctx context.Context, scope identity.TenantScope, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, scope identity.TenantScope, product *catalog.Product) error {
	args := m.Called(ctx, scope, product)
	return args.Error(0)
}

func serviceTables() catalog.Tables {
	return catalog.Tables{
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
	}
}

func newServiceUnderTest(t *testing.T) (*ProductService, *mockProductRepository) {
	t.Helper()
	registry, err := catalog.NewRegistry(serviceTables())
	require.NoError(t, err)
	repo := new(mockProductRepository)
	return NewProductService(repo, catalog.NewComposer(registry)), repo
}

func sampleProduct(tenantID uuid.UUID, sequence int) *catalog.Product {
	return &catalog.Product{
		TenantEntity:    shared.NewTenantEntity(tenantID),
		HumanSKU:        "SUN-BEV-JUI-1L-0001",
		NumericSKU:      "101200130001",
		BrandCode:       "SUN",
		CategoryCode:    "BEV",
		SubcategoryCode: "JUI",
		QuantityCode:    "1L",
		Sequence:        sequence,
		Slug:            "orange-juice",
		DisplayName:     "Orange Juice",
	}
}

func samplePrincipal(tenantID uuid.UUID) identity.Principal {
	return identity.Principal{UserID: uuid.New(), TenantID: tenantID, Username: "tester"}
}

func sampleCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		BrandCode:       "SUN",
		CategoryCode:    "BEV",
		SubcategoryCode: "JUI",
		QuantityCode:    "1L",
		DisplayName:     "Orange Juice",
	}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("returns the created product", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(sampleProduct(tenantID, 1), nil).Once()

		resp, err := service.Create(ctx, samplePrincipal(tenantID), nil, sampleCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "SUN-BEV-JUI-1L-0001", resp.HumanSKU)
		assert.Equal(t, "101200130001", resp.NumericSKU)
		assert.Equal(t, tenantID, resp.TenantID)
		repo.AssertExpectations(t)
	})

	t.Run("retries after an allocation conflict", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, catalog.ErrSequenceConflict).Twice()
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(sampleProduct(tenantID, 1), nil).Once()

		resp, err := service.Create(ctx, samplePrincipal(tenantID), nil, sampleCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Sequence)
		repo.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("gives up after bounded retries", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, catalog.ErrSequenceConflict)

		_, err := service.Create(ctx, samplePrincipal(tenantID), nil, sampleCreateRequest())
		assert.ErrorIs(t, err, catalog.ErrSequenceConflict)
		repo.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("a duplicate SKU is not retried", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, catalog.ErrDuplicateSKU)

		_, err := service.Create(ctx, samplePrincipal(tenantID), nil, sampleCreateRequest())
		assert.ErrorIs(t, err, catalog.ErrDuplicateSKU)
		repo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("a principal without a tenant never reaches the store", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)

		_, err := service.Create(ctx, identity.Principal{UserID: uuid.New()}, nil, sampleCreateRequest())
		assert.ErrorIs(t, err, identity.ErrMissingTenant)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("a conflicting declared tenant never reaches the store", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		declared := uuid.New()

		_, err := service.Create(ctx, samplePrincipal(tenantID), &declared, sampleCreateRequest())
		assert.ErrorIs(t, err, identity.ErrTenantMismatch)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("combines rows and total count", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("List", mock.Anything, mock.Anything, mock.Anything).
			Return([]catalog.Product{*sampleProduct(tenantID, 1)}, nil).Once()
		repo.On("Count", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(41), nil).Once()

		resp, err := service.List(ctx, samplePrincipal(tenantID), nil, ListProductsRequest{Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, int64(41), resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 10, resp.PageSize)
		assert.Equal(t, 5, resp.TotalPages)
	})

	t.Run("caps the page size", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.PageSize == 20 && f.Page == 1
		})).Return([]catalog.Product{}, nil).Once()
		repo.On("Count", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil).Once()

		_, err := service.List(ctx, samplePrincipal(tenantID), nil, ListProductsRequest{PageSize: 10000})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("code filters reach the store", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		repo.On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["category_code"] == "BEV" && f.Filters["subcategory_code"] == "JUI"
		})).Return([]catalog.Product{}, nil).Once()
		repo.On("Count", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil).Once()

		_, err := service.List(ctx, samplePrincipal(tenantID), nil, ListProductsRequest{
			CategoryCode:    "BEV",
			SubcategoryCode: "JUI",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("applies display fields and persists", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		product := sampleProduct(tenantID, 1)
		repo.On("FindByID", mock.Anything, mock.Anything, product.ID).
			Return(product, nil).Once()
		repo.On("Update", mock.Anything, mock.Anything, product).
			Return(nil).Once()

		resp, err := service.Update(ctx, samplePrincipal(tenantID), nil, product.ID, UpdateProductRequest{
			DisplayName: "Orange Juice 1L",
			CountryCode: "de",
		})
		require.NoError(t, err)
		assert.Equal(t, "Orange Juice 1L", resp.DisplayName)
		assert.Equal(t, "orange-juice-1l", resp.Slug)
		assert.Equal(t, "DE", resp.CountryCode)
		// Identity stays as assigned at creation
		assert.Equal(t, "101200130001", resp.NumericSKU)
		repo.AssertExpectations(t)
	})

	t.Run("a missing product is reported before any write", func(t *testing.T) {
		service, repo := newServiceUnderTest(t)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, mock.Anything, id).
			Return(nil, shared.ErrNotFound).Once()

		_, err := service.Update(ctx, samplePrincipal(tenantID), nil, id, UpdateProductRequest{DisplayName: "X"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestProductService_Decompose(t *testing.T) {
	service, _ := newServiceUnderTest(t)

	resp, err := service.Decompose("101200130042")
	require.NoError(t, err)
	assert.Equal(t, "SUN", resp.BrandCode)
	assert.Equal(t, "BEV", resp.CategoryCode)
	assert.Equal(t, "JUI", resp.SubcategoryCode)
	assert.Equal(t, "1L", resp.QuantityCode)
	assert.Equal(t, 42, resp.Sequence)

	_, err = service.Decompose("too-short")
	assert.Error(t, err)
}

func TestProductService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	service, repo := newServiceUnderTest(t)
	repo.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return([]catalog.Product{*sampleProduct(tenantID, 1)}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.ExportCSV(ctx, samplePrincipal(tenantID), nil, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"human_sku,numeric_sku,brand_code,category_code,subcategory_code,quantity_code,sequence,slug,display_name,country_code,note,barcode,unit_price",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "SUN-BEV-JUI-1L-0001,101200130001,SUN,BEV,JUI,1L,1,orange-juice,Orange Juice"))
}
