package identity

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindByName finds a tenant by its display name
	FindByName(ctx context.Context, name string) (*Tenant, error)

	// FindAll returns all tenants ordered by name
	FindAll(ctx context.Context) ([]Tenant, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// Count counts all tenants
	Count(ctx context.Context) (int64, error)
}
