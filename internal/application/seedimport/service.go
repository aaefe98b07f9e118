package seedimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	csvimport "github.com/srkasse/backend/internal/infrastructure/import"
	"github.com/srkasse/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ConflictMode defines how the importer treats a row whose numeric SKU
// already exists for the tenant
type ConflictMode string

const (
	// ConflictModeSkip leaves the existing row untouched
	ConflictModeSkip ConflictMode = "skip"
	// ConflictModeUpdate overwrites the existing row's display fields only
	ConflictModeUpdate ConflictMode = "update"
)

// IsValid checks if the conflict mode is valid
func (c ConflictMode) IsValid() bool {
	return c == ConflictModeSkip || c == ConflictModeUpdate
}

// requiredColumns are the seed columns every source must carry
var requiredColumns = []string{
	"tenant", "brand_code", "category_code", "subcategory_code",
	"quantity_code", "sequence", "display_name",
}

// Options configures an import run
type Options struct {
	ConflictMode ConflictMode
	MaxErrors    int
}

// Result accumulates per-row outcomes of an import run
type Result struct {
	TotalRows    int                  `json:"total_rows"`
	ImportedRows int                  `json:"imported_rows"`
	UpdatedRows  int                  `json:"updated_rows"`
	SkippedRows  int                  `json:"skipped_rows"`
	ErrorRows    int                  `json:"error_rows"`
	Errors       []csvimport.RowError `json:"errors,omitempty"`
	IsTruncated  bool                 `json:"is_truncated,omitempty"`
	TotalErrors  int                  `json:"total_errors,omitempty"`
}

// Service reconciles an external seed source into the tenant-scoped store.
// Rows go through the same repository gate and allocator as live traffic, so
// an import cannot produce a row live traffic could not. Each row commits on
// its own, a long import holds no locks across rows, and a second run over
// the same source changes nothing.
type Service struct {
	tenants   identity.TenantRepository
	products  catalog.ProductRepository
	allocator catalog.SequenceAllocator
	composer  *catalog.Composer
	// importerID identifies the batch principal in scope resolution
	importerID uuid.UUID
}

// NewService creates a new seed import Service
func NewService(
	tenants identity.TenantRepository,
	products catalog.ProductRepository,
	allocator catalog.SequenceAllocator,
	composer *catalog.Composer,
) *Service {
	return &Service{
		tenants:    tenants,
		products:   products,
		allocator:  allocator,
		composer:   composer,
		importerID: uuid.New(),
	}
}

// ImportFromReader runs a full import over a CSV seed source. Collisions are
// resolved per the configured policy and never abort the run; the context is
// checked between rows so a cancelled import stops at a row boundary with
// every processed row already committed.
func (s *Service) ImportFromReader(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	if opts.ConflictMode == "" {
		opts.ConflictMode = ConflictModeSkip
	}
	if !opts.ConflictMode.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONFLICT_MODE",
			fmt.Sprintf("conflict mode must be %q or %q", ConflictModeSkip, ConflictModeUpdate))
	}

	parser, err := csvimport.NewCSVParser(r)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	if missing := parser.ValidateHeaders(requiredColumns); len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_COLUMNS",
			fmt.Sprintf("seed source is missing required columns: %v", missing))
	}

	result := &Result{}
	collected := csvimport.NewErrorCollection(opts.MaxErrors)
	scopes := make(map[string]identity.TenantScope)

	for {
		if err := ctx.Err(); err != nil {
			return s.finish(ctx, result, collected), err
		}

		row, err := parser.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			// With lazy quoting enabled the errors left here are stream-level
			// read failures, which the next row cannot recover from
			result.TotalRows++
			result.ErrorRows++
			collected.Add(csvimport.NewRowError(parser.TotalRows()+1, "", csvimport.ErrCodeImportCSVParsing, err.Error()))
			break
		}
		if row.IsEmpty() {
			continue
		}
		result.TotalRows++

		s.importRow(ctx, row, opts.ConflictMode, scopes, result, collected)
	}

	return s.finish(ctx, result, collected), nil
}

// importRow processes one seed row: resolve-or-create the tenant, validate,
// insert-or-reconcile, advance the counter
func (s *Service) importRow(ctx context.Context, row *csvimport.Row, mode ConflictMode, scopes map[string]identity.TenantScope, result *Result, collected *csvimport.ErrorCollection) {
	parsed, rowErr := s.parseRow(row)
	if rowErr != nil {
		result.ErrorRows++
		collected.Add(*rowErr)
		return
	}

	scope, err := s.resolveScope(ctx, parsed.tenantName, scopes)
	if err != nil {
		result.ErrorRows++
		collected.Add(csvimport.NewRowErrorWithValue(row.LineNumber, "tenant",
			csvimport.ErrCodeImportInvalidFormat, err.Error(), parsed.tenantName))
		return
	}

	sku, err := s.composer.Compose(parsed.codes.BrandCode, parsed.codes.CategoryCode,
		parsed.codes.SubcategoryCode, parsed.codes.QuantityCode, parsed.sequence)
	if err != nil {
		result.ErrorRows++
		collected.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportInvalidCode, err.Error()))
		return
	}
	// A supplied numeric SKU must agree with the recomposed one; a mismatch
	// means the source and the registry disagree about the encoding
	if parsed.numericSKU != "" && parsed.numericSKU != sku.Numeric {
		result.ErrorRows++
		collected.Add(csvimport.NewRowErrorWithValue(row.LineNumber, "numeric_sku",
			csvimport.ErrCodeImportInvalidFormat,
			fmt.Sprintf("numeric SKU does not match composed value %s", sku.Numeric), parsed.numericSKU))
		return
	}

	outcome, err := s.reconcile(ctx, scope, parsed, sku, mode)
	if err != nil {
		result.ErrorRows++
		collected.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportCollision, err.Error()))
		return
	}

	// Counters only ever move forward, so re-running the import over the
	// same source leaves them unchanged
	if err := s.allocator.AdvanceTo(ctx, scope.TenantID(), parsed.codes.CategoryCode,
		parsed.codes.SubcategoryCode, parsed.sequence); err != nil {
		result.ErrorRows++
		collected.Add(csvimport.NewRowError(row.LineNumber, "sequence", csvimport.ErrCodeImportCSVParsing, err.Error()))
		return
	}

	switch outcome {
	case outcomeImported:
		result.ImportedRows++
	case outcomeUpdated:
		result.UpdatedRows++
	case outcomeSkipped:
		result.SkippedRows++
	}
}

type rowOutcome int

const (
	outcomeImported rowOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

// reconcile inserts the row or applies the collision policy when the numeric
// SKU already exists for the tenant
func (s *Service) reconcile(ctx context.Context, scope identity.TenantScope, parsed *seedRow, sku catalog.SKU, mode ConflictMode) (rowOutcome, error) {
	existing, err := s.products.FindByNumericSKU(ctx, scope, sku.Numeric)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return 0, err
	}

	if existing != nil {
		if mode == ConflictModeSkip {
			return outcomeSkipped, nil
		}
		if err := existing.UpdateDisplayFields(parsed.fields); err != nil {
			return 0, err
		}
		if err := s.products.Update(ctx, scope, existing); err != nil {
			return 0, err
		}
		return outcomeUpdated, nil
	}

	components := catalog.Components{
		BrandCode:       parsed.codes.BrandCode,
		CategoryCode:    parsed.codes.CategoryCode,
		SubcategoryCode: parsed.codes.SubcategoryCode,
		QuantityCode:    parsed.codes.QuantityCode,
		Sequence:        parsed.sequence,
	}
	product, err := catalog.NewProduct(scope.TenantID(), components, sku, parsed.fields)
	if err != nil {
		return 0, err
	}

	if err := s.products.Restore(ctx, scope, product); err != nil {
		// Lost a race with a concurrent writer on the same SKU; the row
		// exists now, which is the skip outcome
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			logger.L(ctx).Warn("seed row collided during insert",
				zap.String("numeric_sku", sku.Numeric),
				zap.String("tenant_id", scope.TenantID().String()),
			)
			return outcomeSkipped, nil
		}
		return 0, err
	}
	return outcomeImported, nil
}

// resolveScope resolves or creates the tenant by name and caches the
// resulting scope for the rest of the run
func (s *Service) resolveScope(ctx context.Context, name string, scopes map[string]identity.TenantScope) (identity.TenantScope, error) {
	if scope, ok := scopes[name]; ok {
		return scope, nil
	}

	tenant, err := s.tenants.FindByName(ctx, name)
	if errors.Is(err, shared.ErrNotFound) {
		tenant, err = identity.NewTenant(name)
		if err != nil {
			return identity.TenantScope{}, err
		}
		if saveErr := s.tenants.Save(ctx, tenant); saveErr != nil {
			// Another run of the importer may have created it in between
			if errors.Is(saveErr, shared.ErrAlreadyExists) {
				tenant, err = s.tenants.FindByName(ctx, name)
			} else {
				err = saveErr
			}
		}
	}
	if err != nil {
		return identity.TenantScope{}, err
	}

	principal := identity.Principal{
		UserID:   s.importerID,
		TenantID: tenant.ID,
		Username: "seed-import",
	}
	scope, err := identity.ResolveScope(principal, nil)
	if err != nil {
		return identity.TenantScope{}, err
	}
	scopes[name] = scope
	return scope, nil
}

// seedRow is one parsed and validated seed source row
type seedRow struct {
	tenantName string
	codes      catalog.CodeComponents
	sequence   int
	numericSKU string
	fields     catalog.DisplayFields
}

// parseRow extracts and validates the raw column values of one row
func (s *Service) parseRow(row *csvimport.Row) (*seedRow, *csvimport.RowError) {
	for _, col := range requiredColumns {
		if row.Get(col) == "" {
			e := csvimport.NewRowError(row.LineNumber, col, csvimport.ErrCodeImportRequiredField,
				fmt.Sprintf("field '%s' is required", col))
			return nil, &e
		}
	}

	sequence, err := strconv.Atoi(row.Get("sequence"))
	if err != nil || sequence < 1 {
		e := csvimport.NewRowErrorWithValue(row.LineNumber, "sequence",
			csvimport.ErrCodeImportInvalidFormat, "sequence must be a positive integer", row.Get("sequence"))
		return nil, &e
	}

	var unitPrice *decimal.Decimal
	if raw := row.Get("unit_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			e := csvimport.NewRowErrorWithValue(row.LineNumber, "unit_price",
				csvimport.ErrCodeImportInvalidFormat, "unit_price must be a decimal number", raw)
			return nil, &e
		}
		unitPrice = &price
	}

	return &seedRow{
		tenantName: row.Get("tenant"),
		codes: catalog.CodeComponents{
			BrandCode:       row.Get("brand_code"),
			CategoryCode:    row.Get("category_code"),
			SubcategoryCode: row.Get("subcategory_code"),
			QuantityCode:    row.Get("quantity_code"),
		},
		sequence:   sequence,
		numericSKU: row.Get("numeric_sku"),
		fields: catalog.DisplayFields{
			DisplayName: row.Get("display_name"),
			CountryCode: row.Get("country_code"),
			Note:        row.Get("note"),
			Barcode:     row.Get("barcode"),
			UnitPrice:   unitPrice,
		},
	}, nil
}

func (s *Service) finish(ctx context.Context, result *Result, collected *csvimport.ErrorCollection) *Result {
	result.Errors = collected.Errors()
	result.IsTruncated = collected.IsTruncated()
	result.TotalErrors = collected.TotalCount()

	logger.L(ctx).Info("seed import finished",
		zap.Int("total_rows", result.TotalRows),
		zap.Int("imported", result.ImportedRows),
		zap.Int("updated", result.UpdatedRows),
		zap.Int("skipped", result.SkippedRows),
		zap.Int("errors", result.ErrorRows),
	)
	return result
}
