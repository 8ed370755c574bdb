// internal/api/auth_handlers.go
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/xmdragon/linode-manager/internal/auth"
	"github.com/xmdragon/linode-manager/internal/models"
)

// @Summary Login
// @Description Authenticate an operator and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Operator Credentials"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid input"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Login failed: Invalid request body: %v", err)
		respondError(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	// Same message for unknown user and wrong password: no enumeration signal
	account, valid := auth.ValidateCredentials(h.store, req.Username, req.Password)
	if !valid {
		respondError(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	token, err := auth.GenerateJWT(account)
	if err != nil {
		log.Errorf("Login succeeded for user '%s', but failed to generate token: %v", req.Username, err)
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	log.Infof("User '%s' logged in successfully", req.Username)
	respondData(c, http.StatusOK, models.LoginResponse{Token: token, User: account.View()}, "Login successful")
}

// @Summary Current identity
// @Description Return the identity embedded in the verified session token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /auth/me [get]
func (h *Handler) MeHandler(c *gin.Context) {
	view := models.UserView{
		ID:       c.GetString(ctxUserID),
		Username: c.GetString(ctxUsername),
		Role:     c.GetString(ctxRole),
	}
	respondData(c, http.StatusOK, view, "")
}

// @Summary Update profile
// @Description Change username and/or password after re-verifying the current password
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param update body models.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Username taken or password too short"
// @Failure 401 {object} models.APIResponse "Current password incorrect"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Router /auth/update-profile [put]
func (h *Handler) UpdateProfileHandler(c *gin.Context) {
	username := c.GetString(ctxUsername)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("UpdateProfile failed for user '%s': Invalid request body: %v", username, err)
		respondError(c, http.StatusBadRequest, "Current password is required", err)
		return
	}

	account, found := h.store.FindByID(c.GetString(ctxUserID))
	if !found {
		// Token outlived the account; only possible once a persistent store
		// replaces the seeded list.
		respondError(c, http.StatusNotFound, "User not found", nil)
		return
	}

	// The current password gates every change, regardless of which fields
	// are being updated.
	if !auth.CheckPassword(account, req.CurrentPassword) {
		log.Infof("UpdateProfile failed for user '%s': current password incorrect", username)
		respondError(c, http.StatusUnauthorized, "Current password is incorrect", nil)
		return
	}

	needRelogin := false

	if req.Username != "" && req.Username != account.Username {
		if existing, exists := h.store.FindByUsername(req.Username); exists && existing.ID != account.ID {
			respondError(c, http.StatusBadRequest, "Username already taken", nil)
			return
		}
		account.Username = req.Username
		// Previously issued tokens embed the old username and are now stale
		needRelogin = true
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < auth.MinPasswordLength {
			respondError(c, http.StatusBadRequest, "New password must be at least 6 characters", nil)
			return
		}
		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			log.Errorf("UpdateProfile failed for user '%s': %v", username, err)
			respondError(c, http.StatusInternalServerError, "Failed to update password", err)
			return
		}
		account.PasswordHash = hash
	}

	if err := h.store.Update(account); err != nil {
		log.Errorf("UpdateProfile failed for user '%s': %v", username, err)
		respondError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	log.Infof("User '%s' updated profile (needRelogin=%t)", username, needRelogin)
	respondData(c, http.StatusOK, models.UpdateProfileResponse{
		User:        account.View(),
		NeedRelogin: needRelogin,
	}, "Profile updated successfully")
}
