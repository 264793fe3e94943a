// Package auth implements the local credential store and the session token
// scheme. The registry is purely client-local and demo-grade: it is persisted
// alongside the session blob and verified with bcrypt. It is not a security
// boundary; it sits behind this package so a server-verified scheme could be
// swapped in later.
package auth

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkrasnovs/launchboard/internal/common"
	"github.com/dkrasnovs/launchboard/internal/models"
)

// CredentialStore owns the user registry: registration, password
// verification, and snapshot/restore for persistence. Password hashes never
// leave the store; every exposed record is a SafeUser.
type CredentialStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Register creates a new user. The email must not match an existing record
// (exact, case-sensitive). The password is stored as a salted bcrypt hash.
func (s *CredentialStore) Register(name, email, password string) (models.SafeUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.SafeUser{}, common.ErrDuplicateUser
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.SafeUser{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	s.users = append(s.users, user)

	return user.Safe(), nil
}

// Authenticate verifies email/password against the registry. Unknown email
// and wrong password both yield ErrInvalidCredentials so the caller cannot
// tell registered accounts apart from unregistered ones.
func (s *CredentialStore) Authenticate(email, password string) (models.SafeUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return models.SafeUser{}, common.ErrInvalidCredentials
		}
		return u.Safe(), nil
	}

	return models.SafeUser{}, common.ErrInvalidCredentials
}

// Snapshot returns a copy of the full registry, hashes included. It exists
// only for the persistence layer; nothing else should call it.
func (s *CredentialStore) Snapshot() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

// Restore replaces the registry with a previously persisted snapshot.
func (s *CredentialStore) Restore(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.User(nil), users...)
}
