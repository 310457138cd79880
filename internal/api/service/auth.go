package service

import (
	"context"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/pkg/cryptox"
	"github.com/fluxfinance/fluxfinance/pkg/jwtx"
	"github.com/fluxfinance/fluxfinance/pkg/slogx"
)

// AuthService performs the login flow: credential check then token issue.
type AuthService struct {
	Credentials *CredentialStore
	Signer      jwtx.Signer
}

// Login verifies email+password against the seeded credentials and returns
// a signed bearer token plus the user's public profile. Unknown email and
// wrong password both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	// Both failure branches log the same record so the logs stay as
	// uniform as the wire response.
	user, ok := s.Credentials.Lookup(email)
	if !ok {
		log.Info("login failed", "email", email)
		return "", domain.User{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", "email", email)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.Signer.Issue(user.ID, user.Email)
	if err != nil {
		return "", domain.User{}, err
	}

	return token, user, nil
}
