package main

import (
	"context"
	"crypto/rand"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/devcell/portal/internal/config"
	"github.com/devcell/portal/internal/handler"
	"github.com/devcell/portal/internal/jobs"
	"github.com/devcell/portal/internal/logging"
	"github.com/devcell/portal/internal/middleware"
	"github.com/devcell/portal/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logging.Setup(cfg.Server.Env, cfg.Log.Level)

	// Load the member roster
	accounts, err := loadAccounts(cfg)
	if err != nil {
		slog.Error("failed to load accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		// Development only; Validate rejects an empty secret in production.
		// Tokens do not survive a restart with a random secret.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			slog.Error("failed to generate dev secret", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Warn("AUTH_SECRET not set, using a random development secret")
	}

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		Accounts: accounts,
		Secret:   secret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: cfg.Auth.TokenTTL,
	})

	formService := service.NewFormService(service.FormServiceConfig{
		Pictures: service.NewPictureStore(),
		DraftTTL: cfg.Form.DraftTTL,
	})

	contentService := service.NewContentService()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Abandoned drafts expire in the background
	sweeper := jobs.NewDraftSweeper(formService, cfg.Form.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	// Create router and register routes
	mux := handler.NewRouter(handler.RouterConfig{
		AuthService:    authService,
		FormService:    formService,
		ContentService: contentService,
	})

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.Int("accounts", len(accounts)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// loadAccounts reads the roster file when configured, otherwise falls
// back to the built-in development accounts.
func loadAccounts(cfg *config.Config) ([]service.SeedAccount, error) {
	if cfg.Auth.AccountsPath != "" {
		return service.LoadAccounts(cfg.Auth.AccountsPath)
	}
	slog.Warn("AUTH_ACCOUNTS_PATH not set, using development accounts")
	return service.DevAccounts(), nil
}
