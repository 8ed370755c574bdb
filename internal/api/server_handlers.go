// internal/api/server_handlers.go
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/xmdragon/linode-manager/internal/models"
)

// @Summary List instances
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse "Provider call failed"
// @Router /servers [get]
func (h *Handler) ListServersHandler(c *gin.Context) {
	instances, err := h.linode.ListInstances(c.Request.Context())
	if err != nil {
		log.Errorf("ListServers failed: %v", err)
		respondUpstream(c, err, "Failed to fetch server list")
		return
	}
	respondData(c, http.StatusOK, instances, "Server list fetched successfully")
}

// @Summary Instance detail
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 500 {object} models.APIResponse "Provider call failed"
// @Router /servers/{id} [get]
func (h *Handler) GetServerHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	instance, err := h.linode.GetInstance(c.Request.Context(), id)
	if err != nil {
		log.Errorf("GetServer failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to fetch server detail")
		return
	}
	respondData(c, http.StatusOK, instance, "Server detail fetched successfully")
}

// @Summary Create instance
// @Tags Servers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param server body models.CreateInstanceRequest true "Instance definition"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Missing required fields"
// @Failure 500 {object} models.APIResponse "Provider call failed"
// @Router /servers [post]
func (h *Handler) CreateServerHandler(c *gin.Context) {
	var req models.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateServer failed: Invalid request body: %v", err)
		respondError(c, http.StatusBadRequest, "label, region and type are required", err)
		return
	}

	instance, err := h.linode.CreateInstance(c.Request.Context(), &req)
	if err != nil {
		log.Errorf("CreateServer failed for label '%s': %v", req.Label, err)
		respondUpstream(c, err, "Failed to create server")
		return
	}

	log.Infof("Created instance %d (label '%s') in region '%s'", instance.ID, instance.Label, instance.Region)
	respondData(c, http.StatusCreated, instance, "Server created successfully")
}

// @Summary Delete instance
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 500 {object} models.APIResponse "Provider call failed"
// @Router /servers/{id} [delete]
func (h *Handler) DeleteServerHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	if err := h.linode.DeleteInstance(c.Request.Context(), id); err != nil {
		log.Errorf("DeleteServer failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to delete server")
		return
	}
	log.Infof("Deleted instance %d", id)
	respondMessage(c, http.StatusOK, "Server deleted successfully")
}

// @Summary Reboot instance
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Router /servers/{id}/reboot [post]
func (h *Handler) RebootServerHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	if err := h.linode.RebootInstance(c.Request.Context(), id); err != nil {
		log.Errorf("RebootServer failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to reboot server")
		return
	}
	log.Infof("Rebooting instance %d", id)
	respondMessage(c, http.StatusOK, "Server reboot initiated")
}

// @Summary Boot instance
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Router /servers/{id}/boot [post]
func (h *Handler) BootServerHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	if err := h.linode.BootInstance(c.Request.Context(), id); err != nil {
		log.Errorf("BootServer failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to boot server")
		return
	}
	log.Infof("Booting instance %d", id)
	respondMessage(c, http.StatusOK, "Server boot initiated")
}

// @Summary Shut down instance
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Router /servers/{id}/shutdown [post]
func (h *Handler) ShutdownServerHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	if err := h.linode.ShutdownInstance(c.Request.Context(), id); err != nil {
		log.Errorf("ShutdownServer failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to shut down server")
		return
	}
	log.Infof("Shutting down instance %d", id)
	respondMessage(c, http.StatusOK, "Server shutdown initiated")
}

// @Summary Instance metrics
// @Description Synthetic telemetry snapshot for an instance
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Router /servers/{id}/metrics [get]
func (h *Handler) ServerMetricsHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	metrics, err := h.linode.GetMetrics(c.Request.Context(), id)
	if err != nil {
		log.Errorf("ServerMetrics failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to fetch server metrics")
		return
	}
	respondData(c, http.StatusOK, metrics, "Server metrics fetched successfully")
}

// @Summary Instance network info
// @Description Synthetic transfer usage, DNS resolvers and transfer history
// @Tags Servers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} models.APIResponse
// @Router /servers/{id}/network [get]
func (h *Handler) ServerNetworkHandler(c *gin.Context) {
	id, ok := parseInstanceID(c)
	if !ok {
		return
	}
	network, err := h.linode.GetNetworkInfo(c.Request.Context(), id)
	if err != nil {
		log.Errorf("ServerNetwork failed for instance %d: %v", id, err)
		respondUpstream(c, err, "Failed to fetch network info")
		return
	}
	respondData(c, http.StatusOK, network, "Network info fetched successfully")
}
