package handlers

import (
	"net/http"

	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the system-wide rollup.
type StatsHandler struct {
	Stats services.StatsService
}

// GET /api/stats
func (h StatsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.Stats.SystemStats()})
}
