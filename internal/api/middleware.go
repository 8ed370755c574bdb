// internal/api/middleware.go
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xmdragon/linode-manager/internal/auth"
	"github.com/xmdragon/linode-manager/internal/models"
)

// Context keys set by the middleware for handlers to use.
const (
	ctxUserID    = "userID"
	ctxUsername  = "username"
	ctxRole      = "role"
	ctxRequestID = "requestID"
)

// RequestIDMiddleware assigns each request an id, echoed in the
// X-Request-ID response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// AuthMiddleware validates the JWT bearer token from the Authorization
// header. A missing token is 401; a token that fails verification is 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Success: false,
				Message: "Access token required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Success: false,
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := auth.ValidateJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, models.APIResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		// Store identity in context for handlers to use
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}
