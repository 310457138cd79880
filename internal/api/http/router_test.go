package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/fluxfinance/fluxfinance/internal/api/service"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
	"github.com/fluxfinance/fluxfinance/internal/api/store/drivers/memory"
	"github.com/fluxfinance/fluxfinance/pkg/jwtx"
)

const (
	testEmail    = "user@example.com"
	testPassword = "correctpassword"
)

// newTestRouter wires the full router against the given store and a single
// seeded user, the same shape main builds at startup.
func newTestRouter(t *testing.T, st store.Store) (*Router, *jwtx.HS256) {
	t.Helper()

	tokens, err := jwtx.NewHS256([]byte("test-secret"), "fluxfinance", time.Hour)
	require.NoError(t, err)

	creds, err := service.NewCredentialStore([]service.SeedUser{
		{Email: testEmail, Password: testPassword, Name: "Test User"},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(tokens, "test", st, logger)
	r.AuthService = &service.AuthService{Credentials: creds, Signer: tokens}
	r.InvoiceService = &service.InvoiceService{Store: st}
	r.CustomerService = &service.CustomerService{Store: st}
	r.ApplyRoutes()
	return r, tokens
}

func newTestServer(t *testing.T) (*httptest.Server, *jwtx.HS256) {
	t.Helper()

	r, tokens := newTestRouter(t, memory.NewStore())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, tokens
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin_Success(t *testing.T) {
	srv, tokens := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	token, _ := body["token"].(string)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, testEmail, claims.Email)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, testEmail, user["email"])
	require.Equal(t, "Test User", user["name"])
	require.NotContains(t, user, "passwordHash")
}

func TestLogin_BadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", testEmail, "nope"},
		{"unknown email", "ghost@example.com", testPassword},
		{"empty body fields", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
				"email":    tc.email,
				"password": tc.password,
			})
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.Equal(t, "Email or password is incorrect", body["error"])
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/login", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/invoices", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Authentication required", body["error"])
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/invoices", "not-a-jwt", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "Invalid or expired token", body["error"])
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := jwtx.NewClaims(1, testEmail, "fluxfinance", time.Hour, past)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/invoices", token, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "Invalid or expired token", body["error"])
	})

	t.Run("customers gated too", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/customers", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestInvoices_CRUD(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	input := map[string]any{
		"date":          "2025-03-01",
		"description":   "Consulting services",
		"quantity":      3,
		"paymentMethod": "bank transfer",
		"currency":      "EUR",
		"invoiceNumber": "INV-100",
		"vatPercentage": 20,
		"price":         100,
	}

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, input)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, float64(1), created["id"])
	require.Equal(t, float64(300), created["subtotal"])
	require.Equal(t, float64(60), created["vatAmount"])
	require.Equal(t, float64(360), created["totalAmount"])
	require.NotEmpty(t, created["createdAt"])

	resp, got := doJSON(t, http.MethodGet, srv.URL+"/api/invoices/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created, got)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, map[string]any{
		"date":          "2025-03-02",
		"description":   "Hosting",
		"quantity":      1,
		"paymentMethod": "credit card",
		"currency":      "EUR",
		"invoiceNumber": "INV-101",
		"vatPercentage": 0,
		"price":         50,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode) // zero vatPercentage reads as missing

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/invoices", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, deleted := doJSON(t, http.MethodDelete, srv.URL+"/api/invoices/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Invoice deleted successfully", deleted["message"])
	require.Equal(t, float64(1), deleted["id"])

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/invoices/1", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Invoice not found", body["error"])
}

func TestInvoices_ListNewestFirst(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	for _, num := range []string{"INV-001", "INV-002", "INV-003"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, map[string]any{
			"date":          "2025-03-01",
			"description":   "Work",
			"quantity":      1,
			"paymentMethod": "bank transfer",
			"currency":      "EUR",
			"invoiceNumber": num,
			"vatPercentage": 20,
			"price":         10,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/invoices", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 3)
	require.Equal(t, "INV-003", list[0]["invoiceNumber"])
	require.Equal(t, "INV-001", list[2]["invoiceNumber"])
}

func TestInvoices_ValidationErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	t.Run("missing field reported in order", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, map[string]any{
			"description": "No date",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Missing required field: date", body["error"])
	})

	t.Run("negative price", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, map[string]any{
			"date":          "2025-03-01",
			"description":   "Bad price",
			"quantity":      1,
			"paymentMethod": "cash",
			"currency":      "EUR",
			"invoiceNumber": "INV-200",
			"vatPercentage": 20,
			"price":         -5,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Price must be a non-negative number", body["error"])
	})

	t.Run("whitespace quantity string", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, map[string]any{
			"date":          "2025-03-01",
			"description":   "Blank quantity",
			"quantity":      " ",
			"paymentMethod": "cash",
			"currency":      "EUR",
			"invoiceNumber": "INV-202",
			"vatPercentage": 20,
			"price":         5,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Quantity must be a positive number", body["error"])
	})

	t.Run("non-numeric quantity string", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/invoices", token, map[string]any{
			"date":          "2025-03-01",
			"description":   "Bad quantity",
			"quantity":      "abc",
			"paymentMethod": "cash",
			"currency":      "EUR",
			"invoiceNumber": "INV-201",
			"vatPercentage": 20,
			"price":         5,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Quantity must be a positive number", body["error"])
	})
}

func TestInvoices_BadID(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp, body := doJSON(t, method, srv.URL+"/api/invoices/abc", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Invalid invoice ID", body["error"])
	}
}

func TestCustomers_CreateAndGet(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/api/customers", token, map[string]string{
		"name":    "Acme GmbH",
		"email":   "billing@acme.test",
		"address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, float64(1), created["id"])

	resp, got := doJSON(t, http.MethodGet, srv.URL+"/api/customers/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created, got)

	t.Run("missing name or email", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/customers", token, map[string]string{
			"name": "No Email Ltd",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Name and email are required fields", body["error"])
	})

	t.Run("non-numeric id is not found", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/customers/abc", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Customer not found", body["error"])
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/customers/99", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Customer not found", body["error"])
	})
}

func TestSystemEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("root info", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "FluxFinance API", body["name"])
	})

	t.Run("health", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/health", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body["status"])
		require.Equal(t, "FluxFinance API is running", body["message"])
	})

	t.Run("livez and readyz", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/livez", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/readyz", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		checks, ok := body["checks"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "ok", checks["database"])
	})
}
