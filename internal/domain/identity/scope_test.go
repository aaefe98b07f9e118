package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScope(t *testing.T) {
	tenantID := uuid.New()
	principal := Principal{UserID: uuid.New(), TenantID: tenantID, Username: "clerk"}

	t.Run("resolves from the principal's tenant claim", func(t *testing.T) {
		scope, err := ResolveScope(principal, nil)
		require.NoError(t, err)
		assert.Equal(t, tenantID, scope.TenantID())
		assert.False(t, scope.IsZero())
	})

	t.Run("a matching declared tenant corroborates the claim", func(t *testing.T) {
		declared := tenantID
		scope, err := ResolveScope(principal, &declared)
		require.NoError(t, err)
		assert.Equal(t, tenantID, scope.TenantID())
	})

	t.Run("a nil declared tenant is treated as undeclared", func(t *testing.T) {
		declared := uuid.Nil
		scope, err := ResolveScope(principal, &declared)
		require.NoError(t, err)
		assert.Equal(t, tenantID, scope.TenantID())
	})

	t.Run("a conflicting declared tenant is rejected", func(t *testing.T) {
		declared := uuid.New()
		_, err := ResolveScope(principal, &declared)
		assert.ErrorIs(t, err, ErrTenantMismatch)
	})

	t.Run("a declared tenant never substitutes for a missing claim", func(t *testing.T) {
		declared := uuid.New()
		_, err := ResolveScope(Principal{UserID: uuid.New()}, &declared)
		assert.ErrorIs(t, err, ErrMissingTenant)
	})

	t.Run("rejects a principal without tenant claim", func(t *testing.T) {
		_, err := ResolveScope(Principal{UserID: uuid.New()}, nil)
		assert.ErrorIs(t, err, ErrMissingTenant)
	})
}

func TestTenantScope_IsZero(t *testing.T) {
	var zero TenantScope
	assert.True(t, zero.IsZero())
	assert.Equal(t, uuid.Nil, zero.TenantID())
}
