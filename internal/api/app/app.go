package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/fluxfinance/fluxfinance/internal/api/http"
	"github.com/fluxfinance/fluxfinance/internal/api/service"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
	"github.com/fluxfinance/fluxfinance/internal/api/store/drivers/memory"
	"github.com/fluxfinance/fluxfinance/internal/api/store/drivers/sqlite"
	"github.com/fluxfinance/fluxfinance/pkg/jwtx"
	"github.com/fluxfinance/fluxfinance/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "1.0.0"
)

// Application encapsulates the API service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	tokens *jwtx.HS256

	// Services
	authService     *service.AuthService
	invoiceService  *service.InvoiceService
	customerService *service.CustomerService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "fluxfinance-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.seedSampleData(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.StorageDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// initDatabase picks the storage driver and, for sqlite, applies migrations
func (app *Application) initDatabase() error {
	switch app.cfg.StorageDriver {
	case "", "memory":
		app.db = memory.NewStore()
		return nil

	case "sqlite":
		host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(host)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}

		app.logger.Info("database migrations applied successfully")
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", app.cfg.StorageDriver)
	}
}

// initTokens sets up the HS256 signer. Without a configured secret each
// process generates its own, so tokens die with the process.
func (app *Application) initTokens() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = hex.EncodeToString(raw)
		app.logger.Warn("FLUX_JWT_SECRET not set, generated a random secret; tokens will not survive a restart")
	}

	tokens, err := jwtx.NewHS256([]byte(secret), app.cfg.Issuer, app.cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.tokens = tokens
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	creds, err := service.NewCredentialStore(app.cfg.ParseSeedUsers())
	if err != nil {
		return fmt.Errorf("failed to build credential store: %w", err)
	}

	app.authService = &service.AuthService{
		Credentials: creds,
		Signer:      app.tokens,
	}
	app.invoiceService = &service.InvoiceService{Store: app.db}
	app.customerService = &service.CustomerService{Store: app.db}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.InvoiceService = app.invoiceService
	router.CustomerService = app.customerService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
