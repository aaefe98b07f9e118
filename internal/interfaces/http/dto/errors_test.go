package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_CODE"))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus("MISSING_TENANT"))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus("TENANT_MISMATCH"))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus("SEQUENCE_CONFLICT"))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus("NOT_FOUND"))

	// Counter desync is an integrity failure, not a caller error
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("DUPLICATE_SKU"))

	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_NEW"))
}
