package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srkasse/backend/internal/interfaces/http/dto"
)

// TenantHeaderKey is the optional caller-declared tenant header
const TenantHeaderKey = "X-Tenant-ID"

// declaredTenantKey is the gin context key for the parsed declared tenant
const declaredTenantKey = "declared_tenant_id"

// DeclaredTenant parses the optional X-Tenant-ID header. The value is only a
// declaration: scope resolution compares it against the principal's verified
// tenant claim and rejects on mismatch. A malformed value is rejected here
// before anything downstream can look at it.
func DeclaredTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TenantHeaderKey)
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "X-Tenant-ID must be a UUID"))
			return
		}

		c.Set(declaredTenantKey, id)
		c.Next()
	}
}

// GetDeclaredTenant retrieves the declared tenant from gin context, nil if
// the caller declared none
func GetDeclaredTenant(c *gin.Context) *uuid.UUID {
	if v, exists := c.Get(declaredTenantKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return &id
		}
	}
	return nil
}
