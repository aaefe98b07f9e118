package catalog

import (
	"context"

	"github.com/google/uuid"
)

// SequenceCounter holds the last issued sequence for one allocation key.
// Rows are created lazily on first allocation and only ever move forward;
// a decrement is an administrative correction outside this code path.
type SequenceCounter struct {
	TenantID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryCode    string    `gorm:"type:varchar(8);primaryKey"`
	SubcategoryCode string    `gorm:"type:varchar(8);primaryKey"`
	Counter         int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (SequenceCounter) TableName() string {
	return "product_counters"
}

// SequenceAllocator issues sequence numbers for (tenant, category,
// subcategory) keys. Allocation is linearizable per key: concurrent callers
// on the same key observe strictly increasing, gap-free values starting at 1;
// distinct keys never contend with each other.
type SequenceAllocator interface {
	// Allocate issues the next sequence for the key in its own transaction
	Allocate(ctx context.Context, tenantID uuid.UUID, categoryCode, subcategoryCode string) (int, error)

	// AdvanceTo raises the key's counter to at least seq. It never lowers
	// the counter; re-applying the same seq is a no-op.
	AdvanceTo(ctx context.Context, tenantID uuid.UUID, categoryCode, subcategoryCode string, seq int) error

	// Current returns the last issued sequence for the key, 0 for a fresh key
	Current(ctx context.Context, tenantID uuid.UUID, categoryCode, subcategoryCode string) (int, error)
}
