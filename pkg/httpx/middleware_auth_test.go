package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fluxfinance/fluxfinance/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256([]byte("test-secret"), "fluxfinance-api", time.Hour)
	require.NoError(t, err)
	return h
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, email, ok := UserFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusInternalServerError, "identity missing from context")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"id": userID, "email": email})
	})
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	t.Parallel()

	h := Chain(echoIdentity(), AuthMiddleware(newTestVerifier(t)))

	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer ", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Authentication required", body.Error)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Parallel()

	h := Chain(echoIdentity(), AuthMiddleware(newTestVerifier(t)))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Invalid or expired token", body.Error)
}

func TestAuthMiddlewareValidTokenInjectsIdentity(t *testing.T) {
	t.Parallel()

	verifier := newTestVerifier(t)
	h := Chain(echoIdentity(), AuthMiddleware(verifier))

	token, err := verifier.Issue(3, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.EqualValues(t, 3, body.ID)
	require.Equal(t, "user@example.com", body.Email)
}
