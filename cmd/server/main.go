package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const rateLimitBurstMultiplier = 2

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := newLogger()
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	limitRepo := repositories.NewSharedLimitRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	accountService := services.NewAccountService(accountRepo, limitRepo, logger)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo, categoryRepo, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	sharedLimitService := services.NewSharedLimitService(limitRepo, accountRepo, logger)
	dashboardService := services.NewDashboardService(accountRepo, transactionRepo, categoryRepo, logger)
	creditService := services.NewCreditInsightService(accountRepo, limitRepo, logger)
	demoSeeder := services.NewDemoSeeder(accountRepo, transactionRepo, categoryRepo, limitRepo, categoryService, logger)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService, metrics)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	sharedLimitHandler := handlers.NewSharedLimitHandler(sharedLimitService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, metrics)
	creditHandler := handlers.NewCreditHandler(creditService, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(tokenService, demoSeeder)

	seedDemoDataIfEnabled(cfg, demoSeeder, logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitPerSecond*rateLimitBurstMultiplier,
	))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	if !cfg.IsProduction() {
		api.POST("/dev/token", devHandler.IssueToken)
	}

	protected := api.Group("", middleware.RequireAuth(tokenService))

	protected.POST("/accounts", accountHandler.CreateAccount)
	protected.GET("/accounts", accountHandler.GetUserAccounts)
	protected.GET("/accounts/:accountId", accountHandler.GetAccount)
	protected.PATCH("/accounts/:accountId", accountHandler.UpdateAccount)
	protected.POST("/accounts/:accountId/archive", accountHandler.ArchiveAccount)
	protected.POST("/accounts/:accountId/unarchive", accountHandler.UnarchiveAccount)
	protected.DELETE("/accounts/:accountId", accountHandler.DeleteAccount)

	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.GET("/transactions/:transactionId", transactionHandler.GetTransaction)
	protected.PATCH("/transactions/:transactionId", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:transactionId", transactionHandler.DeleteTransaction)

	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.GET("/categories", categoryHandler.GetUserCategories)
	protected.PATCH("/categories/:categoryId", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)

	protected.POST("/shared-limits", sharedLimitHandler.CreateSharedLimit)
	protected.GET("/shared-limits", sharedLimitHandler.GetUserSharedLimits)
	protected.GET("/shared-limits/:limitId", sharedLimitHandler.GetSharedLimit)
	protected.PATCH("/shared-limits/:limitId", sharedLimitHandler.UpdateSharedLimit)
	protected.DELETE("/shared-limits/:limitId", sharedLimitHandler.DeleteSharedLimit)
	protected.POST("/shared-limits/:limitId/accounts", sharedLimitHandler.AttachAccount)
	protected.DELETE("/shared-limits/:limitId/accounts/:accountId", sharedLimitHandler.DetachAccount)

	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	protected.GET("/credit/summary", creditHandler.GetCreditSummary)
	protected.GET("/credit/alerts", creditHandler.GetCreditAlerts)

	if !cfg.IsProduction() {
		protected.POST("/dev/seed", devHandler.SeedDemoData)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(v)); err == nil {
			level = parsed
		}
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// seedDemoDataIfEnabled seeds the configured demo user on startup. Used by
// demo environments so a freshly provisioned instance has data to show.
func seedDemoDataIfEnabled(cfg *config.Config, seeder services.DemoSeederInterface, logger *slog.Logger) {
	if !cfg.Demo.SeedDemoData {
		return
	}

	userID, err := uuid.Parse(cfg.Demo.SeedUserID)
	if err != nil {
		logger.Warn("SEED_DEMO_DATA is set but SEED_DEMO_USER_ID is not a valid UUID, skipping seed",
			"seed_user_id", cfg.Demo.SeedUserID)
		return
	}

	if err := seeder.Seed(userID); err != nil {
		logger.Error("demo data seeding failed", "error", err, "user_id", userID)
		return
	}

	logger.Info("demo data seeded", "user_id", userID)
}
