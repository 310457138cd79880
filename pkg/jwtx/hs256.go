package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid reports a token that failed signature or structural checks.
	ErrInvalid = errors.New("jwtx: invalid token")

	// ErrExpired reports a well-formed, correctly signed token whose expiry
	// has passed. Callers distinguish this from ErrInvalid to pick response
	// codes, so Verify must never collapse the two.
	ErrExpired = errors.New("jwtx: token expired")
)

// Signer issues signed bearer tokens for an authenticated user.
type Signer interface {
	Issue(userID int64, email string) (string, error)
}

// Verifier validates a token string and returns its claims if legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single shared HMAC-SHA256 secret.
// It is purely functional given the secret: no server-side token state.
type HS256 struct {
	secret []byte
	issuer string
	ttl    time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewHS256 creates a token signer/verifier from a shared secret.
// A zero ttl falls back to DefaultTokenTTL.
func NewHS256(secret []byte, issuer string, ttl time.Duration) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HS256 secret")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &HS256{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue produces a signed token embedding the user id, email and
// issued/expiry timestamps.
func (h *HS256) Issue(userID int64, email string) (string, error) {
	claims := NewClaims(userID, email, h.issuer, h.ttl, h.now().UTC())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify validates the token string and returns its parsed Claims.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return h.now().UTC() }),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalid
	}

	if h.issuer != "" && claims.Issuer != h.issuer {
		return Claims{}, ErrInvalid
	}

	return *claims, nil
}
