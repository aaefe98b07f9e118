package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcatalog "github.com/srkasse/backend/internal/application/catalog"
	"github.com/srkasse/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	BaseHandler
	service *appcatalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers product routes. The decompose and export routes
// must come before the :id route so gin does not swallow them as IDs.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/export", h.Export)
		products.GET("/sku/:sku", h.GetBySKU)
		products.GET("/decompose/:sku", h.Decompose)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
	}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	principal, ok := h.getPrincipal(c)
	if !ok {
		return
	}

	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), principal, middleware.GetDeclaredTenant(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	principal, ok := h.getPrincipal(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.service.Get(c.Request.Context(), principal, middleware.GetDeclaredTenant(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// GetBySKU handles GET /api/v1/products/sku/:sku
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	principal, ok := h.getPrincipal(c)
	if !ok {
		return
	}

	sku := c.Param("sku")
	if sku == "" {
		h.BadRequest(c, "SKU is required")
		return
	}

	product, err := h.service.GetByNumericSKU(c.Request.Context(), principal, middleware.GetDeclaredTenant(c), sku)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	principal, ok := h.getPrincipal(c)
	if !ok {
		return
	}

	var req appcatalog.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), principal, middleware.GetDeclaredTenant(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	principal, ok := h.getPrincipal(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req appcatalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	product, err := h.service.Update(c.Request.Context(), principal, middleware.GetDeclaredTenant(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Decompose handles GET /api/v1/products/decompose/:sku
func (h *ProductHandler) Decompose(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		h.BadRequest(c, "SKU is required")
		return
	}

	components, err := h.service.Decompose(sku)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, components)
}

// Export handles GET /api/v1/products/export
func (h *ProductHandler) Export(c *gin.Context) {
	principal, ok := h.getPrincipal(c)
	if !ok {
		return
	}

	// Buffer the export so errors still map to a proper error response
	// instead of a truncated body
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Request.Context(), principal, middleware.GetDeclaredTenant(c), &buf); err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("products-%s.csv", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
