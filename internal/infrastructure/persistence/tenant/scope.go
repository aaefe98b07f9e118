// Package tenant applies tenant filtering to GORM queries.
//
// Repositories never receive a raw tenant identifier; they receive an
// identity.TenantScope, which can only be produced by resolving a verified
// principal. Every query helper here takes that scope, so a query without a
// tenant filter cannot be expressed through this package.
//
// Usage:
//
//	db := tenant.Scoped(gormDB, scope)
//	db.Find(&products) // WHERE tenant_id = 'xxx' is always applied
package tenant

import (
	"errors"

	"github.com/srkasse/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// ErrScopeRequired is returned when a query is attempted with a zero scope
var ErrScopeRequired = errors.New("tenant scope is required but was not resolved")

// Filter returns a GORM scope that restricts queries to the tenant
func Filter(scope identity.TenantScope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", scope.TenantID())
	}
}

// Scoped returns a DB restricted to the scope's tenant. A zero scope yields
// a DB that errors on every operation instead of one that silently matches
// all tenants.
func Scoped(db *gorm.DB, scope identity.TenantScope) *gorm.DB {
	if scope.IsZero() {
		scoped := db.Session(&gorm.Session{})
		_ = scoped.AddError(ErrScopeRequired)
		return scoped
	}
	return db.Scopes(Filter(scope))
}

// Transaction executes fn inside a transaction whose DB handle is scoped to
// the tenant. fn receives both the scoped handle for tenant-owned tables and
// the raw transaction for tables keyed explicitly by tenant columns.
func Transaction(db *gorm.DB, scope identity.TenantScope, fn func(tx *gorm.DB, scoped *gorm.DB) error) error {
	if scope.IsZero() {
		return ErrScopeRequired
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return fn(tx, tx.Scopes(Filter(scope)))
	})
}
