// internal/models/models.go
package models

// APIResponse is the envelope wrapped around every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// UserAccount is a stored user record. PasswordHash is a bcrypt hash and is
// never serialized.
type UserAccount struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// UserView is the password-redacted representation returned to clients.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// View returns the redacted client-facing representation of the account.
func (u *UserAccount) View() UserView {
	return UserView{ID: u.ID, Username: u.Username, Role: u.Role}
}

// LoginRequest represents the payload for the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the payload returned after successful login
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// UpdateProfileRequest represents the payload for profile updates. The
// current password is always required; username and new password are
// optional and independent.
type UpdateProfileRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfileResponse carries the updated account view. NeedRelogin is set
// when the username changed, since tokens issued before the change embed the
// old username.
type UpdateProfileResponse struct {
	User        UserView `json:"user"`
	NeedRelogin bool     `json:"needRelogin"`
}
