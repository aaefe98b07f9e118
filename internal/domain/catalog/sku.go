package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSequenceWidth is the zero-padded decimal width of the sequence part
// of both SKU renderings. Allocating past its capacity is a configuration
// error, never a truncation.
const DefaultSequenceWidth = 4

// SKU is the pair of parallel identifiers derived from one (codes, sequence) tuple
type SKU struct {
	Human   string `json:"human_sku"`
	Numeric string `json:"numeric_sku"`
}

// Components is the decomposition of a numeric SKU back into its code
// components and sequence
type Components struct {
	BrandCode       string `json:"brand_code"`
	CategoryCode    string `json:"category_code"`
	SubcategoryCode string `json:"subcategory_code"`
	QuantityCode    string `json:"quantity_code"`
	Sequence        int    `json:"sequence"`
}

// Composer turns code components plus a sequence number into the human and
// numeric SKU renderings, and reverses the numeric rendering. It consults
// only the immutable registry, so identical inputs always yield identical
// outputs.
type Composer struct {
	registry *Registry
	seqWidth int
}

// NewComposer creates a composer over the given registry
func NewComposer(registry *Registry) *Composer {
	return &Composer{registry: registry, seqWidth: DefaultSequenceWidth}
}

// MaxSequence returns the largest sequence the fixed width can render
func (c *Composer) MaxSequence() int {
	max := 1
	for i := 0; i < c.seqWidth; i++ {
		max *= 10
	}
	return max - 1
}

// NumericLength returns the total digit count of a numeric SKU
func (c *Composer) NumericLength() int {
	return BrandNumericWidth + CategoryNumericWidth + SubcategoryNumericWidth + QuantityNumericWidth + c.seqWidth
}

// ValidateCodes checks the four code components against the registry without
// rendering anything. Callers validate before taking locks so that a bad code
// never touches the sequence counter.
func (c *Composer) ValidateCodes(brandCode, categoryCode, subcategoryCode, quantityCode string) error {
	if _, err := c.registry.brandNumeric(brandCode); err != nil {
		return err
	}
	if _, err := c.registry.categoryNumeric(categoryCode); err != nil {
		return err
	}
	if _, err := c.registry.subcategoryNumeric(categoryCode, subcategoryCode); err != nil {
		return err
	}
	if _, err := c.registry.quantityNumeric(quantityCode); err != nil {
		return err
	}
	return nil
}

// Compose validates the code components against the registry and renders
// both SKU forms. The human SKU dash-joins the codes followed by the
// zero-padded sequence; the numeric SKU concatenates the fixed-width numeric
// encodings followed by the same sequence.
func (c *Composer) Compose(brandCode, categoryCode, subcategoryCode, quantityCode string, sequence int) (SKU, error) {
	if sequence < 1 {
		return SKU{}, fmt.Errorf("sequence must be positive, got %d: %w", sequence, ErrSequenceOverflow)
	}
	if sequence > c.MaxSequence() {
		return SKU{}, fmt.Errorf("sequence %d exceeds width %d: %w", sequence, c.seqWidth, ErrSequenceOverflow)
	}

	brandNum, err := c.registry.brandNumeric(brandCode)
	if err != nil {
		return SKU{}, err
	}
	categoryNum, err := c.registry.categoryNumeric(categoryCode)
	if err != nil {
		return SKU{}, err
	}
	subNum, err := c.registry.subcategoryNumeric(categoryCode, subcategoryCode)
	if err != nil {
		return SKU{}, err
	}
	quantityNum, err := c.registry.quantityNumeric(quantityCode)
	if err != nil {
		return SKU{}, err
	}

	seq := fmt.Sprintf("%0*d", c.seqWidth, sequence)
	return SKU{
		Human:   strings.Join([]string{brandCode, categoryCode, subcategoryCode, quantityCode, seq}, "-"),
		Numeric: brandNum + categoryNum + subNum + quantityNum + seq,
	}, nil
}

// Decompose recovers the code components and sequence from a numeric SKU by
// fixed-offset slicing and reverse registry lookup
func (c *Composer) Decompose(numeric string) (Components, error) {
	if len(numeric) != c.NumericLength() || !isDigits(numeric) {
		return Components{}, fmt.Errorf("numeric SKU %q must be %d digits: %w", numeric, c.NumericLength(), ErrInvalidCode)
	}

	pos := 0
	next := func(width int) string {
		part := numeric[pos : pos+width]
		pos += width
		return part
	}
	brandNum := next(BrandNumericWidth)
	categoryNum := next(CategoryNumericWidth)
	subNum := next(SubcategoryNumericWidth)
	quantityNum := next(QuantityNumericWidth)
	seqPart := next(c.seqWidth)

	brandCode, ok := c.registry.brandByNumeric[brandNum]
	if !ok {
		return Components{}, fmt.Errorf("brand encoding %q: %w", brandNum, ErrInvalidCode)
	}
	categoryCode, ok := c.registry.categoryByNumeric[categoryNum]
	if !ok {
		return Components{}, fmt.Errorf("category encoding %q: %w", categoryNum, ErrInvalidCode)
	}
	subCode, ok := c.registry.subByNumeric[categoryCode][subNum]
	if !ok {
		return Components{}, fmt.Errorf("subcategory encoding %q under category %q: %w", subNum, categoryCode, ErrInvalidCode)
	}
	quantityCode, ok := c.registry.quantityByNumeric[quantityNum]
	if !ok {
		return Components{}, fmt.Errorf("quantity encoding %q: %w", quantityNum, ErrInvalidCode)
	}

	seq, err := strconv.Atoi(seqPart)
	if err != nil || seq < 1 {
		return Components{}, fmt.Errorf("sequence part %q: %w", seqPart, ErrInvalidCode)
	}

	return Components{
		BrandCode:       brandCode,
		CategoryCode:    categoryCode,
		SubcategoryCode: subCode,
		QuantityCode:    quantityCode,
		Sequence:        seq,
	}, nil
}
