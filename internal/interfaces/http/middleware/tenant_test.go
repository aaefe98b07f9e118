package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performTenantRequest(t *testing.T, header string) (*httptest.ResponseRecorder, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var declared *uuid.UUID
	router := gin.New()
	router.Use(DeclaredTenant())
	router.GET("/probe", func(c *gin.Context) {
		declared = GetDeclaredTenant(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set(TenantHeaderKey, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, declared
}

func TestDeclaredTenant(t *testing.T) {
	t.Run("no header means no declaration", func(t *testing.T) {
		w, declared := performTenantRequest(t, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, declared)
	})

	t.Run("a valid header is parsed and exposed", func(t *testing.T) {
		id := uuid.New()
		w, declared := performTenantRequest(t, id.String())
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, declared)
		assert.Equal(t, id, *declared)
	})

	t.Run("a malformed header aborts the request", func(t *testing.T) {
		w, declared := performTenantRequest(t, "tenant-7")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, declared)
		assert.Contains(t, w.Body.String(), "X-Tenant-ID must be a UUID")
	})
}
