package handlers

import (
	"net/http"
	"strconv"

	"busticket/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AuditHandler lists the persisted audit trail. Admin-only; requires a
// configured database.
type AuditHandler struct {
	Repo repositories.AuditRepository
}

// GET /api/admin/audit?limit=100
func (h AuditHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entries, err := h.Repo.Recent(limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit log unavailable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
