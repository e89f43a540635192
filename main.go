package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mrops-br/storefront-api/internal/app/service"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/mrops-br/storefront-api/internal/infrastructure/auth"
	"github.com/mrops-br/storefront-api/internal/infrastructure/config"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/storefront-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/storefront-api/internal/infrastructure/telemetry"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.LoadConfig()

	telem, err := telemetry.NewTelemetry(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ensure telemetry is flushed on exit
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer("storefront-api")
	meter := telem.MeterProvider.Meter("storefront-api")
	logger := telem.Logger

	logger.Info("Starting Storefront API")

	products := memory.NewProductRepository(tracer, logger)
	carts := memory.NewCartRepository(tracer, logger)
	users := memory.NewUserRepository(tracer, logger)

	if cfg.Server.SeedCatalog {
		if err := products.Seed(ctx, memory.DefaultCatalog()); err != nil {
			logger.Error("Failed to seed catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	if err := seedDemoUser(ctx, users, hasher, &cfg.Auth); err != nil {
		logger.Error("Failed to create demo user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	tokens := auth.NewTokenManager(&cfg.Auth)

	productService := service.NewProductService(products, tracer, meter, logger)
	cartService := service.NewCartService(carts, products, tracer, meter, logger)
	checkoutService := service.NewCheckoutService(carts, tracer, meter, logger)
	authService := service.NewAuthService(users, hasher, tokens, service.LoginLimits{
		MaxAttempts: cfg.Auth.MaxAttempts,
		Window:      cfg.Auth.LockoutWindow,
	}, tracer, meter, logger)

	server := http.NewServer(&cfg.Server, http.Handlers{
		Products: handler.NewProductHandler(productService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Auth:     handler.NewAuthHandler(authService, logger),
	}, tokens, logger, telem)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", slog.String("error", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	logger.Info("Server stopped")
}

// seedDemoUser registers the account configured for local sign-in.
func seedDemoUser(ctx context.Context, users *memory.UserRepository, hasher *auth.BcryptHasher, cfg *config.AuthConfig) error {
	if cfg.DemoEmail == "" {
		return nil
	}

	hash, err := hasher.Hash(cfg.DemoPassword)
	if err != nil {
		return err
	}

	return users.Save(ctx, &domain.User{
		ID:           uuid.NewString(),
		Email:        cfg.DemoEmail,
		PasswordHash: hash,
	})
}
