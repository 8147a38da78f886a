package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status and store counts"
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"total_books": h.services.BookCount(),
		"total_users": h.services.UserCount(),
	})
}
