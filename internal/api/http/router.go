package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fluxfinance/fluxfinance/internal/api/service"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
	"github.com/fluxfinance/fluxfinance/pkg/httpx"
	"github.com/fluxfinance/fluxfinance/pkg/jwtx"
	"github.com/fluxfinance/fluxfinance/pkg/slogx"

	_ "github.com/fluxfinance/fluxfinance/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	InvoiceService  *service.InvoiceService
	CustomerService *service.CustomerService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvoices()
	r.registerCustomers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FluxFinance API
//	@version		1.0.0
//	@description	Financial management system API: token-gated invoice and customer CRUD.
//	@description
//	@description				Obtain a token via POST /api/auth/login and present it as "Bearer {token}".
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/login", loginHandler)
}

func (r *Router) registerInvoices() {
	h := &InvoiceHandler{InvoiceService: r.InvoiceService}

	authn := httpx.AuthMiddleware(r.verifier)

	r.Mux.Handle("POST /api/invoices", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("GET /api/invoices", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("GET /api/invoices/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn))
	r.Mux.Handle("DELETE /api/invoices/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
}

func (r *Router) registerCustomers() {
	h := &CustomerHandler{CustomerService: r.CustomerService}

	authn := httpx.AuthMiddleware(r.verifier)

	r.Mux.Handle("POST /api/customers", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("GET /api/customers", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("GET /api/customers/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", APIInfoHandler(r.buildVersion))
	r.Mux.Handle("GET /api/health", HealthHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
