package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/adapters/database/memory"
	"github.com/SscSPs/finance_dashboard/internal/adapters/database/pgsql"
	"github.com/SscSPs/finance_dashboard/internal/adapters/marketdata"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/handlers"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/SscSPs/finance_dashboard/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Finance Dashboard API
// @version 1.0
// @description Personal finance dashboard: accounts, transactions, investments and live market quotes.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	feed := marketdata.NewFeed(
		marketdata.WithTickInterval(cfg.MarketTickInterval),
		marketdata.WithLatency(cfg.MarketFetchLatency, cfg.MarketMoversLatency),
		marketdata.WithSeed(cfg.MarketSeed),
		marketdata.WithLogger(logger),
	)
	defer feed.Close()

	serviceContainer := services.NewServiceContainer(cfg, repos, feed, logger)

	if cfg.SeedDemoData {
		if err := services.SeedDemoData(ctx, serviceContainer.Ledger, time.Now()); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := serviceContainer.Market.Start(ctx); err != nil {
		// Quotes are optional for the rest of the API; holdings are valued at cost until
		// the next investment change triggers a successful refresh.
		logger.Error("Failed to start market data", slog.String("error", err.Error()))
	}
	defer serviceContainer.Market.Stop()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))
	r.Use(middleware.PosthogMiddleware(posthogClient, cfg.InstanceID))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}

// setupRepositories keeps the ledger in memory unless a database URL is configured, in
// which case it connects to PostgreSQL and applies pending migrations first.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if !cfg.UsesDatabase() {
		logger.Info("No database configured, keeping the ledger in memory")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), dbPool.Close, nil
}
