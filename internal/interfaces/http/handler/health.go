package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srkasse/backend/internal/infrastructure/persistence"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	BaseHandler
	db      *persistence.Database
	version string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
		started: time.Now(),
	}
}

// RegisterRoutes registers the versioned health route
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

// healthStatus is the health check payload
type healthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// Check handles GET /health. Reports degraded with a 503 when the database
// does not respond, so load balancers can pull the instance.
func (h *HealthHandler) Check(c *gin.Context) {
	status := healthStatus{
		Status:   "ok",
		Version:  h.version,
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		Database: "up",
	}

	if err := h.db.Ping(); err != nil {
		status.Status = "degraded"
		status.Database = "down"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
