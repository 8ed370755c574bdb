// internal/api/helpers.go
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xmdragon/linode-manager/internal/config"
	"github.com/xmdragon/linode-manager/internal/linode"
	"github.com/xmdragon/linode-manager/internal/models"
)

// respondData writes a success envelope.
func respondData(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, models.APIResponse{Success: true, Data: data, Message: message})
}

// respondMessage writes a success envelope without a data payload.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{Success: true, Message: message})
}

// respondError writes a failure envelope. Detail is included only in
// development mode so internal error text stays out of production responses.
func respondError(c *gin.Context, status int, message string, detail error) {
	resp := models.APIResponse{Success: false, Message: message}
	if detail != nil && config.IsDevelopment() {
		resp.Error = detail.Error()
	}
	c.JSON(status, resp)
}

// respondUpstream maps a provider-adapter failure to the envelope. Upstream
// messages always pass through for operator visibility; anything else is
// treated as internal.
func respondUpstream(c *gin.Context, err error, message string) {
	var upstream *linode.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Message: message,
			Error:   upstream.Message,
		})
		return
	}
	respondError(c, http.StatusInternalServerError, message, err)
}

// parseInstanceID reads the :id path parameter. On malformed input it writes
// a 400 envelope and reports false.
func parseInstanceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid instance id", err)
		return 0, false
	}
	return id, true
}
