package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fluxfinance/fluxfinance/pkg/jwtx"
	"github.com/fluxfinance/fluxfinance/pkg/slogx"
)

const (
	msgAuthRequired = "Authentication required"
	msgInvalidToken = "Invalid or expired token"
)

// AuthMiddleware enforces a valid bearer token before the request proceeds.
// Missing token is a 401; a token that fails verification (bad signature,
// garbage, or expired) is a 403. On success the decoded identity is attached
// to the request context for downstream handlers.
func AuthMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				if !errors.Is(err, jwtx.ErrExpired) {
					log.Warn("jwt verify failed", "err", err)
				}
				WriteError(w, http.StatusForbidden, msgInvalidToken)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				WriteError(w, http.StatusForbidden, msgInvalidToken)
				return
			}

			ctx = contextWithUser(ctx, userID, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithUser(ctx context.Context, userID int64, email string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	ctx = context.WithValue(ctx, CtxKeyEmail, email)
	return ctx
}
