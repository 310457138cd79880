package service

import (
	"fmt"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/pkg/cryptox"
)

// CredentialStore is the static user set seeded at process start. There is
// no registration or update flow, so it is immutable after construction and
// safe for concurrent lookups.
type CredentialStore struct {
	byEmail map[string]domain.User
}

// SeedUser is one configured login before hashing.
type SeedUser struct {
	Email    string
	Password string
	Name     string
}

// NewCredentialStore hashes the seed passwords and indexes users by email.
// Ids are assigned in seed order starting at 1.
func NewCredentialStore(seeds []SeedUser) (*CredentialStore, error) {
	byEmail := make(map[string]domain.User, len(seeds))
	for i, seed := range seeds {
		if seed.Email == "" || seed.Password == "" {
			return nil, fmt.Errorf("seed user %d: email and password are required", i+1)
		}
		hash, err := cryptox.HashPassword(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", seed.Email, err)
		}
		byEmail[seed.Email] = domain.User{
			ID:           int64(i + 1),
			Email:        seed.Email,
			Name:         seed.Name,
			PasswordHash: hash,
		}
	}
	return &CredentialStore{byEmail: byEmail}, nil
}

// Lookup finds a user by exact, case-sensitive email match.
func (s *CredentialStore) Lookup(email string) (domain.User, bool) {
	u, ok := s.byEmail[email]
	return u, ok
}
