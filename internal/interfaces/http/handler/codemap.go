package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/srkasse/backend/internal/application/catalog"
)

// CodeMapHandler serves the registry's code tables. The maps are shared
// across tenants and fixed for the lifetime of the process, so these
// endpoints need no authentication context beyond the usual middleware.
type CodeMapHandler struct {
	BaseHandler
	service *appcatalog.CodeMapService
}

// NewCodeMapHandler creates a new CodeMapHandler
func NewCodeMapHandler(service *appcatalog.CodeMapService) *CodeMapHandler {
	return &CodeMapHandler{service: service}
}

// RegisterRoutes registers code map routes
func (h *CodeMapHandler) RegisterRoutes(rg *gin.RouterGroup) {
	codes := rg.Group("/codes")
	{
		codes.GET("/brands", h.Brands)
		codes.GET("/categories", h.Categories)
		codes.GET("/quantities", h.Quantities)
	}
}

// Brands handles GET /api/v1/codes/brands
func (h *CodeMapHandler) Brands(c *gin.Context) {
	h.Success(c, h.service.Brands())
}

// Categories handles GET /api/v1/codes/categories
func (h *CodeMapHandler) Categories(c *gin.Context) {
	h.Success(c, h.service.Categories())
}

// Quantities handles GET /api/v1/codes/quantities
func (h *CodeMapHandler) Quantities(c *gin.Context) {
	h.Success(c, h.service.Quantities())
}
