// internal/auth/store.go
package auth

import (
	"fmt"
	"sync"

	"github.com/xmdragon/linode-manager/internal/models"
)

// seedPasswordHash is bcrypt("password"), matching the seeded operator
// account shipped with the reference deployment.
const seedPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// UserStore abstracts the account storage so a persistent database can be
// substituted without touching authenticator logic.
type UserStore interface {
	FindByUsername(username string) (*models.UserAccount, bool)
	FindByID(id string) (*models.UserAccount, bool)
	Update(account *models.UserAccount) error
}

// MemoryStore is an in-process UserStore seeded with a single operator
// account. The mutex makes individual store calls atomic; concurrent
// profile updates to the same account still race read-modify-write and
// resolve last-write-wins. Acceptable while there is one seeded account.
type MemoryStore struct {
	mu    sync.RWMutex
	users []models.UserAccount
}

// NewMemoryStore returns a store seeded with the default admin account
// (username "admin", password "password").
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: []models.UserAccount{
			{
				ID:           "1",
				Username:     "admin",
				PasswordHash: seedPasswordHash,
				Role:         "admin",
			},
		},
	}
}

// FindByUsername looks up an account by exact username match. The returned
// account is a copy; mutations must go through Update.
func (s *MemoryStore) FindByUsername(username string) (*models.UserAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, true
		}
	}
	return nil, false
}

// FindByID looks up an account by id. The returned account is a copy.
func (s *MemoryStore) FindByID(id string) (*models.UserAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, true
		}
	}
	return nil, false
}

// Update replaces the stored record matching the account's id.
func (s *MemoryStore) Update(account *models.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == account.ID {
			s.users[i] = *account
			return nil
		}
	}
	return fmt.Errorf("user %q not found", account.ID)
}
