package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srkasse/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Serialization failures only surface against Postgres, so the conflict
// mapping is exercised with a mocked connection.
func TestGormSequenceAllocator_Allocate_ConflictMapping(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	tenantID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "product_counters"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"tenant_id", "category_code", "subcategory_code", "counter"},
		).AddRow(tenantID.String(), "BEV", "JUI", 5))
	mock.ExpectExec(`UPDATE "product_counters"`).
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	allocator := NewGormSequenceAllocator(db)
	_, err = allocator.Allocate(context.Background(), tenantID, "BEV", "JUI")
	assert.ErrorIs(t, err, catalog.ErrSequenceConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
