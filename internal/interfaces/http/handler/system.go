package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *gorm.DB
	started time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{
		db:      db,
		started: time.Now(),
	}
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready reports whether the database answers
func (h *SystemHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		h.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable")
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		h.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable")
		return
	}
	h.Success(c, gin.H{"status": "ready"})
}
