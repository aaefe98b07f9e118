package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/domain/identity"
)

// CreateTenantRequest carries the inputs for administrative tenant creation
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// TenantResponse is the outward representation of a tenant
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantService handles administrative tenant operations. Tenants are
// created administratively and never deleted here.
type TenantService struct {
	tenants identity.TenantRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenants identity.TenantRepository) *TenantService {
	return &TenantService{tenants: tenants}
}

// Create creates a new tenant
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	tenant, err := identity.NewTenant(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.tenants.Save(ctx, tenant); err != nil {
		return nil, err
	}
	resp := toTenantResponse(tenant)
	return &resp, nil
}

// Get returns a tenant by ID
func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTenantResponse(tenant)
	return &resp, nil
}

// List returns all tenants
func (s *TenantService) List(ctx context.Context) ([]TenantResponse, error) {
	tenants, err := s.tenants.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = toTenantResponse(&tenants[i])
	}
	return out, nil
}

func toTenantResponse(t *identity.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
