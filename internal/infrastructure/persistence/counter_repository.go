package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSequenceAllocator implements catalog.SequenceAllocator on top of the
// product_counters table. Linearizability per key comes from a row lock: the
// counter row is read FOR UPDATE, incremented, and written back inside one
// transaction, so two allocations on the same key serialize at the database
// and can never observe the same value.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GormSequenceAllocator
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Allocate issues the next sequence for the key in its own transaction
func (a *GormSequenceAllocator) Allocate(ctx context.Context, tenantID uuid.UUID, categoryCode, subcategoryCode string) (int, error) {
	var seq int
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		seq, txErr = a.AllocateTx(tx, tenantID, categoryCode, subcategoryCode)
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// AllocateTx issues the next sequence inside an existing transaction. Callers
// that insert a row derived from the sequence run this in the same transaction
// as the insert, so a failed insert rolls the counter back with it.
func (a *GormSequenceAllocator) AllocateTx(tx *gorm.DB, tenantID uuid.UUID, categoryCode, subcategoryCode string) (int, error) {
	counter, err := lockCounter(tx, tenantID, categoryCode, subcategoryCode)
	if err != nil {
		return 0, err
	}

	next := counter.Counter + 1
	if err := tx.Model(&catalog.SequenceCounter{}).
		Where("tenant_id = ? AND category_code = ? AND subcategory_code = ?", tenantID, categoryCode, subcategoryCode).
		Update("counter", next).Error; err != nil {
		return 0, mapConflict(err)
	}

	return next, nil
}

// AdvanceTo raises the key's counter to at least seq, never lowering it
func (a *GormSequenceAllocator) AdvanceTo(ctx context.Context, tenantID uuid.UUID, categoryCode, subcategoryCode string, seq int) error {
	if seq < 0 {
		return fmt.Errorf("cannot advance counter to negative sequence %d", seq)
	}
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return AdvanceToTx(tx, tenantID, categoryCode, subcategoryCode, seq)
	})
}

// AdvanceToTx raises the counter inside an existing transaction
func AdvanceToTx(tx *gorm.DB, tenantID uuid.UUID, categoryCode, subcategoryCode string, seq int) error {
	counter, err := lockCounter(tx, tenantID, categoryCode, subcategoryCode)
	if err != nil {
		return err
	}

	if counter.Counter >= seq {
		return nil
	}
	if err := tx.Model(&catalog.SequenceCounter{}).
		Where("tenant_id = ? AND category_code = ? AND subcategory_code = ?", tenantID, categoryCode, subcategoryCode).
		Update("counter", seq).Error; err != nil {
		return mapConflict(err)
	}
	return nil
}

// Current returns the last issued sequence for the key, 0 for a fresh key
func (a *GormSequenceAllocator) Current(ctx context.Context, tenantID uuid.UUID, categoryCode, subcategoryCode string) (int, error) {
	var counter catalog.SequenceCounter
	err := a.db.WithContext(ctx).
		Where("tenant_id = ? AND category_code = ? AND subcategory_code = ?", tenantID, categoryCode, subcategoryCode).
		First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Counter, nil
}

// lockCounter reads the counter row FOR UPDATE, creating it lazily on first
// use. The insert uses ON CONFLICT DO NOTHING so two first-time allocations
// racing on the same key both end up locking the single surviving row.
func lockCounter(tx *gorm.DB, tenantID uuid.UUID, categoryCode, subcategoryCode string) (*catalog.SequenceCounter, error) {
	var counter catalog.SequenceCounter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND category_code = ? AND subcategory_code = ?", tenantID, categoryCode, subcategoryCode).
		First(&counter).Error
	if err == nil {
		return &counter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, mapConflict(err)
	}

	fresh := catalog.SequenceCounter{
		TenantID:        tenantID,
		CategoryCode:    categoryCode,
		SubcategoryCode: subcategoryCode,
		Counter:         0,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, mapConflict(err)
	}

	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND category_code = ? AND subcategory_code = ?", tenantID, categoryCode, subcategoryCode).
		First(&counter).Error; err != nil {
		return nil, mapConflict(err)
	}
	return &counter, nil
}

// mapConflict translates retryable database conflicts into the domain error
func mapConflict(err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", catalog.ErrSequenceConflict, err)
	}
	return err
}

// Ensure GormSequenceAllocator implements SequenceAllocator
var _ catalog.SequenceAllocator = (*GormSequenceAllocator)(nil)
