// internal/auth/credentials.go
package auth

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/xmdragon/linode-manager/internal/models"
)

const bcryptCost = 10

// MinPasswordLength is the minimum accepted length for new passwords.
const MinPasswordLength = 6

// ValidateCredentials looks up the account by username and checks the
// password against the stored bcrypt hash. An unknown username and a wrong
// password are indistinguishable to the caller so login responses carry no
// user-enumeration signal.
func ValidateCredentials(store UserStore, username, password string) (*models.UserAccount, bool) {
	account, found := store.FindByUsername(username)
	if !found {
		log.Infof("Login attempt failed: User '%s' not found", username)
		return nil, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Infof("Login attempt failed for user '%s': password mismatch", username)
		return nil, false
	}

	return account, true
}

// CheckPassword verifies a plaintext password against an account's stored
// hash, used for current-password re-verification on profile updates.
func CheckPassword(account *models.UserAccount, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
