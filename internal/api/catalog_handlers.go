// internal/api/catalog_handlers.go
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Catalog listings are fetched fresh from the provider on every request; the
// gateway holds no authoritative copy.

// @Summary List regions
// @Description Regions sorted by country priority, closest markets first
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/regions [get]
func (h *Handler) ListRegionsHandler(c *gin.Context) {
	regions, err := h.linode.ListRegions(c.Request.Context())
	if err != nil {
		log.Errorf("ListRegions failed: %v", err)
		respondUpstream(c, err, "Failed to fetch region list")
		return
	}
	respondData(c, http.StatusOK, regions, "Region list fetched successfully")
}

// @Summary List instance types
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/types [get]
func (h *Handler) ListTypesHandler(c *gin.Context) {
	types, err := h.linode.ListTypes(c.Request.Context())
	if err != nil {
		log.Errorf("ListTypes failed: %v", err)
		respondUpstream(c, err, "Failed to fetch instance type list")
		return
	}
	respondData(c, http.StatusOK, types, "Instance type list fetched successfully")
}

// @Summary List images
// @Description Official public images only, sorted by label
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/images [get]
func (h *Handler) ListImagesHandler(c *gin.Context) {
	images, err := h.linode.ListImages(c.Request.Context())
	if err != nil {
		log.Errorf("ListImages failed: %v", err)
		respondUpstream(c, err, "Failed to fetch image list")
		return
	}
	respondData(c, http.StatusOK, images, "Image list fetched successfully")
}

// @Summary List SSH keys
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/sshkeys [get]
func (h *Handler) ListSSHKeysHandler(c *gin.Context) {
	keys, err := h.linode.ListSSHKeys(c.Request.Context())
	if err != nil {
		log.Errorf("ListSSHKeys failed: %v", err)
		respondUpstream(c, err, "Failed to fetch SSH key list")
		return
	}
	respondData(c, http.StatusOK, keys, "SSH key list fetched successfully")
}

// @Summary List StackScripts
// @Description Public, non-deprecated StackScripts only
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/stackscripts [get]
func (h *Handler) ListStackScriptsHandler(c *gin.Context) {
	scripts, err := h.linode.ListStackScripts(c.Request.Context())
	if err != nil {
		log.Errorf("ListStackScripts failed: %v", err)
		respondUpstream(c, err, "Failed to fetch StackScript list")
		return
	}
	respondData(c, http.StatusOK, scripts, "StackScript list fetched successfully")
}

// @Summary List backups
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/backups [get]
func (h *Handler) ListBackupsHandler(c *gin.Context) {
	backups, err := h.linode.ListBackups(c.Request.Context())
	if err != nil {
		log.Errorf("ListBackups failed: %v", err)
		respondUpstream(c, err, "Failed to fetch backup list")
		return
	}
	respondData(c, http.StatusOK, backups, "Backup list fetched successfully")
}

// @Summary List firewalls
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/firewalls [get]
func (h *Handler) ListFirewallsHandler(c *gin.Context) {
	firewalls, err := h.linode.ListFirewalls(c.Request.Context())
	if err != nil {
		log.Errorf("ListFirewalls failed: %v", err)
		respondUpstream(c, err, "Failed to fetch firewall list")
		return
	}
	respondData(c, http.StatusOK, firewalls, "Firewall list fetched successfully")
}

// @Summary List provider account users
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /servers/users [get]
func (h *Handler) ListAccountUsersHandler(c *gin.Context) {
	users, err := h.linode.ListAccountUsers(c.Request.Context())
	if err != nil {
		log.Errorf("ListAccountUsers failed: %v", err)
		respondUpstream(c, err, "Failed to fetch user list")
		return
	}
	respondData(c, http.StatusOK, users, "User list fetched successfully")
}
