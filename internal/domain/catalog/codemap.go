package catalog

import (
	"fmt"
	"strings"
)

// Axis is a categorical dimension of the SKU code space
type Axis string

const (
	AxisBrand       Axis = "brand"
	AxisCategory    Axis = "category"
	AxisSubcategory Axis = "subcategory"
	AxisQuantity    Axis = "quantity"
)

// Fixed widths of the pure-numeric encodings inside the numeric SKU
const (
	BrandNumericWidth       = 3
	CategoryNumericWidth    = 2
	SubcategoryNumericWidth = 2
	QuantityNumericWidth    = 1
)

// CodeMapEntry maps a short code to its human label. Numeric is the
// fixed-width encoding used inside the numeric SKU; when empty and the code
// is all digits, it defaults to the zero-padded code itself.
type CodeMapEntry struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Numeric string `json:"numeric"`
}

// CategoryEntry is a category code with its category-scoped subcategories.
// Subcategory codes are only meaningful within their category (the same
// digit maps to different labels under different categories).
type CategoryEntry struct {
	CodeMapEntry
	Subcategories []CodeMapEntry `json:"subcategories"`
}

// Tables is the static source the registry is built from, one table per axis
type Tables struct {
	Brands     []CodeMapEntry
	Categories []CategoryEntry
	Quantities []CodeMapEntry
}

// Registry is the process-wide, immutable code lookup. It is built exactly
// once at startup; all reads afterwards are side-effect-free and safe for
// unrestricted concurrent access.
type Registry struct {
	brands        map[string]CodeMapEntry
	categories    map[string]CodeMapEntry
	subcategories map[string]map[string]CodeMapEntry
	quantities    map[string]CodeMapEntry

	brandByNumeric    map[string]string
	categoryByNumeric map[string]string
	subByNumeric      map[string]map[string]string
	quantityByNumeric map[string]string

	brandOrder    []CodeMapEntry
	categoryOrder []CategoryEntry
	quantityOrder []CodeMapEntry
}

// NewRegistry builds an immutable registry from the given tables. Numeric
// encodings are validated against the fixed axis widths; a non-numeric code
// without an explicit numeric encoding is a construction error.
func NewRegistry(t Tables) (*Registry, error) {
	r := &Registry{
		brands:            make(map[string]CodeMapEntry, len(t.Brands)),
		categories:        make(map[string]CodeMapEntry, len(t.Categories)),
		subcategories:     make(map[string]map[string]CodeMapEntry, len(t.Categories)),
		quantities:        make(map[string]CodeMapEntry, len(t.Quantities)),
		brandByNumeric:    make(map[string]string, len(t.Brands)),
		categoryByNumeric: make(map[string]string, len(t.Categories)),
		subByNumeric:      make(map[string]map[string]string, len(t.Categories)),
		quantityByNumeric: make(map[string]string, len(t.Quantities)),
	}

	for _, e := range t.Brands {
		entry, err := normalizeEntry(AxisBrand, e, BrandNumericWidth)
		if err != nil {
			return nil, err
		}
		if err := insertEntry(r.brands, r.brandByNumeric, AxisBrand, entry); err != nil {
			return nil, err
		}
		r.brandOrder = append(r.brandOrder, entry)
	}

	for _, c := range t.Categories {
		entry, err := normalizeEntry(AxisCategory, c.CodeMapEntry, CategoryNumericWidth)
		if err != nil {
			return nil, err
		}
		if err := insertEntry(r.categories, r.categoryByNumeric, AxisCategory, entry); err != nil {
			return nil, err
		}

		subs := make(map[string]CodeMapEntry, len(c.Subcategories))
		subNumerics := make(map[string]string, len(c.Subcategories))
		normalized := CategoryEntry{CodeMapEntry: entry}
		for _, s := range c.Subcategories {
			sub, err := normalizeEntry(AxisSubcategory, s, SubcategoryNumericWidth)
			if err != nil {
				return nil, fmt.Errorf("category %s: %w", entry.Code, err)
			}
			if err := insertEntry(subs, subNumerics, AxisSubcategory, sub); err != nil {
				return nil, fmt.Errorf("category %s: %w", entry.Code, err)
			}
			normalized.Subcategories = append(normalized.Subcategories, sub)
		}
		r.subcategories[entry.Code] = subs
		r.subByNumeric[entry.Code] = subNumerics
		r.categoryOrder = append(r.categoryOrder, normalized)
	}

	for _, e := range t.Quantities {
		entry, err := normalizeEntry(AxisQuantity, e, QuantityNumericWidth)
		if err != nil {
			return nil, err
		}
		if err := insertEntry(r.quantities, r.quantityByNumeric, AxisQuantity, entry); err != nil {
			return nil, err
		}
		r.quantityOrder = append(r.quantityOrder, entry)
	}

	return r, nil
}

// Lookup resolves a code on the brand, category or quantity axis to its
// label. Subcategory codes are category-scoped; use LookupSubcategory.
func (r *Registry) Lookup(axis Axis, code string) (string, error) {
	var entry CodeMapEntry
	var ok bool
	switch axis {
	case AxisBrand:
		entry, ok = r.brands[code]
	case AxisCategory:
		entry, ok = r.categories[code]
	case AxisQuantity:
		entry, ok = r.quantities[code]
	default:
		return "", fmt.Errorf("axis %q does not support flat lookup: %w", axis, ErrInvalidCode)
	}
	if !ok {
		return "", fmt.Errorf("%s code %q: %w", axis, code, ErrInvalidCode)
	}
	return entry.Label, nil
}

// LookupSubcategory resolves a subcategory code within its category
func (r *Registry) LookupSubcategory(categoryCode, code string) (string, error) {
	subs, ok := r.subcategories[categoryCode]
	if !ok {
		return "", fmt.Errorf("category code %q: %w", categoryCode, ErrInvalidCode)
	}
	entry, ok := subs[code]
	if !ok {
		return "", fmt.Errorf("subcategory code %q under category %q: %w", code, categoryCode, ErrInvalidCode)
	}
	return entry.Label, nil
}

// Brands returns the brand table in source order
func (r *Registry) Brands() []CodeMapEntry {
	return r.brandOrder
}

// Categories returns the category table, each with its subcategories, in source order
func (r *Registry) Categories() []CategoryEntry {
	return r.categoryOrder
}

// Quantities returns the quantity table in source order
func (r *Registry) Quantities() []CodeMapEntry {
	return r.quantityOrder
}

// Subcategories returns the subcategory table for a category in source order
func (r *Registry) Subcategories(categoryCode string) ([]CodeMapEntry, error) {
	for _, c := range r.categoryOrder {
		if c.Code == categoryCode {
			return c.Subcategories, nil
		}
	}
	return nil, fmt.Errorf("category code %q: %w", categoryCode, ErrInvalidCode)
}

func (r *Registry) brandNumeric(code string) (string, error) {
	e, ok := r.brands[code]
	if !ok {
		return "", fmt.Errorf("brand code %q: %w", code, ErrInvalidCode)
	}
	return e.Numeric, nil
}

func (r *Registry) categoryNumeric(code string) (string, error) {
	e, ok := r.categories[code]
	if !ok {
		return "", fmt.Errorf("category code %q: %w", code, ErrInvalidCode)
	}
	return e.Numeric, nil
}

func (r *Registry) subcategoryNumeric(categoryCode, code string) (string, error) {
	subs, ok := r.subcategories[categoryCode]
	if !ok {
		return "", fmt.Errorf("category code %q: %w", categoryCode, ErrInvalidCode)
	}
	e, ok := subs[code]
	if !ok {
		return "", fmt.Errorf("subcategory code %q under category %q: %w", code, categoryCode, ErrInvalidCode)
	}
	return e.Numeric, nil
}

func (r *Registry) quantityNumeric(code string) (string, error) {
	e, ok := r.quantities[code]
	if !ok {
		return "", fmt.Errorf("quantity code %q: %w", code, ErrInvalidCode)
	}
	return e.Numeric, nil
}

func normalizeEntry(axis Axis, e CodeMapEntry, width int) (CodeMapEntry, error) {
	if e.Code == "" {
		return CodeMapEntry{}, fmt.Errorf("%s: empty code", axis)
	}
	if e.Numeric == "" {
		if !isDigits(e.Code) {
			return CodeMapEntry{}, fmt.Errorf("%s code %q is not numeric and has no explicit numeric encoding", axis, e.Code)
		}
		if len(e.Code) > width {
			return CodeMapEntry{}, fmt.Errorf("%s code %q exceeds numeric width %d", axis, e.Code, width)
		}
		e.Numeric = zeroPad(e.Code, width)
	} else {
		if !isDigits(e.Numeric) {
			return CodeMapEntry{}, fmt.Errorf("%s code %q: numeric encoding %q is not numeric", axis, e.Code, e.Numeric)
		}
		if len(e.Numeric) != width {
			return CodeMapEntry{}, fmt.Errorf("%s code %q: numeric encoding %q must be %d digits", axis, e.Code, e.Numeric, width)
		}
	}
	return e, nil
}

func insertEntry(byCode map[string]CodeMapEntry, byNumeric map[string]string, axis Axis, e CodeMapEntry) error {
	if _, dup := byCode[e.Code]; dup {
		return fmt.Errorf("%s: duplicate code %q", axis, e.Code)
	}
	if prev, dup := byNumeric[e.Numeric]; dup {
		return fmt.Errorf("%s: codes %q and %q share numeric encoding %q", axis, prev, e.Code, e.Numeric)
	}
	byCode[e.Code] = e
	byNumeric[e.Numeric] = e.Code
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
