package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karobar/backoffice/internal/infrastructure/persistence"
)

// SystemHandler serves health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	appName string
	version string
	started time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, appName, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		appName: appName,
		version: version,
		started: time.Now(),
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
		system.GET("/info", h.Info)
	}
}

// Health reports process and database health
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "up"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "down"
		}
	}
	h.Success(c, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"uptime":   time.Since(h.started).Truncate(time.Second).String(),
	})
}

// Info reports build identity
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, gin.H{
		"name":    h.appName,
		"version": h.version,
	})
}
