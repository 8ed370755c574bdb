// internal/api/routes.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xmdragon/linode-manager/internal/auth"
	"github.com/xmdragon/linode-manager/internal/linode"
	"github.com/xmdragon/linode-manager/internal/models"
)

// Handler holds the gateway's collaborators: the operator account store and
// the provider client.
type Handler struct {
	store     auth.UserStore
	linode    *linode.Client
	startTime time.Time
}

// NewHandler wires the account store and provider client into a handler set.
func NewHandler(store auth.UserStore, client *linode.Client) *Handler {
	return &Handler{
		store:     store,
		linode:    client,
		startTime: time.Now(),
	}
}

// SetupRoutes registers all gateway routes on the engine.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.Use(RequestIDMiddleware())

	// --- Public routes ---
	router.GET("/health", h.HealthHandler)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.LoginHandler)

		protected := authGroup.Group("")
		protected.Use(AuthMiddleware())
		{
			protected.GET("/me", h.MeHandler)
			protected.PUT("/update-profile", h.UpdateProfileHandler)
		}
	}

	// --- Protected provider routes ---
	servers := router.Group("/servers")
	servers.Use(AuthMiddleware())
	{
		servers.GET("", h.ListServersHandler)
		servers.POST("", h.CreateServerHandler)

		// Catalog listings; static segments take priority over :id
		servers.GET("/regions", h.ListRegionsHandler)
		servers.GET("/types", h.ListTypesHandler)
		servers.GET("/images", h.ListImagesHandler)
		servers.GET("/sshkeys", h.ListSSHKeysHandler)
		servers.GET("/stackscripts", h.ListStackScriptsHandler)
		servers.GET("/backups", h.ListBackupsHandler)
		servers.GET("/firewalls", h.ListFirewallsHandler)
		servers.GET("/users", h.ListAccountUsersHandler)

		servers.GET("/:id", h.GetServerHandler)
		servers.DELETE("/:id", h.DeleteServerHandler)
		servers.POST("/:id/reboot", h.RebootServerHandler)
		servers.POST("/:id/boot", h.BootServerHandler)
		servers.POST("/:id/shutdown", h.ShutdownServerHandler)
		servers.GET("/:id/metrics", h.ServerMetricsHandler)
		servers.GET("/:id/network", h.ServerNetworkHandler)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.APIResponse{
			Success: false,
			Message: "Endpoint not found",
		})
	})
}
