package identity

import (
	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/shared"
)

// Scope resolution errors
var (
	// ErrMissingTenant is returned when a verified principal carries no tenant claim
	ErrMissingTenant = shared.NewDomainError("MISSING_TENANT", "Principal carries no tenant identifier")
	// ErrTenantMismatch is returned when a caller-declared tenant conflicts with the principal's
	ErrTenantMismatch = shared.NewDomainError("TENANT_MISMATCH", "Declared tenant does not match the authenticated tenant")
)

// Principal is the output of the external credential verifier. The TenantID
// claim is the only identifier ever trusted for data scoping.
type Principal struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Username string
}

// TenantScope is the proof that tenant resolution has happened. It can only
// be constructed through ResolveScope, so every repository call that takes a
// TenantScope is guaranteed to be backed by a verified principal.
type TenantScope struct {
	tenantID uuid.UUID
}

// TenantID returns the resolved tenant identifier
func (s TenantScope) TenantID() uuid.UUID {
	return s.tenantID
}

// IsZero reports whether the scope was never resolved
func (s TenantScope) IsZero() bool {
	return s.tenantID == uuid.Nil
}

// ResolveScope derives the acting tenant scope from a verified principal.
// A declared tenant (e.g. from an X-Tenant-ID header) may only corroborate
// the principal's tenant claim, never override it. The function performs no
// I/O; it is evaluated before any store access.
func ResolveScope(principal Principal, declared *uuid.UUID) (TenantScope, error) {
	if principal.TenantID == uuid.Nil {
		return TenantScope{}, ErrMissingTenant
	}
	if declared != nil && *declared != uuid.Nil && *declared != principal.TenantID {
		return TenantScope{}, ErrTenantMismatch
	}
	return TenantScope{tenantID: principal.TenantID}, nil
}
