// internal/api/info_handlers.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xmdragon/linode-manager/internal/models"
)

// @Summary Liveness
// @Description Service status, current time and uptime in seconds
// @Tags Info
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Seconds(),
	})
}
