package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/identity"
	"github.com/srkasse/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTenantRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	t.Run("saves and finds a tenant", func(t *testing.T) {
		tenant, err := identity.NewTenant("Corner Shop")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tenant))

		byID, err := repo.FindByID(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Equal(t, "Corner Shop", byID.Name)

		byName, err := repo.FindByName(ctx, "Corner Shop")
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, byName.ID)
	})

	t.Run("reports missing tenants as not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByName(ctx, "Nobody")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		dupe, err := identity.NewTenant("Corner Shop")
		require.NoError(t, err)
		err = repo.Save(ctx, dupe)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("lists tenants ordered by name", func(t *testing.T) {
		second, err := identity.NewTenant("Airport Kiosk")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, second))

		tenants, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, tenants, 2)
		assert.Equal(t, "Airport Kiosk", tenants[0].Name)
		assert.Equal(t, "Corner Shop", tenants[1].Name)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
