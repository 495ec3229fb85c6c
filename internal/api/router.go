package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/fintrack/expense-tracker-api/docs"
	"github.com/fintrack/expense-tracker-api/internal/api/handler"
	"github.com/fintrack/expense-tracker-api/internal/api/middleware"
	"github.com/fintrack/expense-tracker-api/internal/core/service"
	"github.com/fintrack/expense-tracker-api/internal/infrastructure/db/postgres"
	redisdb "github.com/fintrack/expense-tracker-api/internal/infrastructure/db/redis"
	"github.com/fintrack/expense-tracker-api/internal/infrastructure/http/handlers"
	"github.com/fintrack/expense-tracker-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("expense_tracker"))

	// --- Dependencies ---
	blacklist := redisdb.NewTokenBlacklist(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL(), blacklist)

	accountRepo := postgres.NewAccountRepository(pool)
	accountService := service.NewAccountService(accountRepo, tokenService, log)
	accountHandler := handler.NewAccountHandler(accountService)

	incomeRepo := postgres.NewIncomeRepository(pool)
	incomeService := service.NewIncomeService(incomeRepo, log)
	incomeHandler := handler.NewIncomeHandler(incomeService)

	expenditureRepo := postgres.NewExpenditureRepository(pool)
	expenditureService := service.NewExpenditureService(expenditureRepo, log)
	expenditureHandler := handler.NewExpenditureHandler(expenditureService)

	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", accountHandler.Signup)
	auth.POST("/login", accountHandler.Login)
	auth.POST("/logout", accountHandler.Logout, authMiddleware)
	auth.POST("/token/refresh", accountHandler.Refresh)
	auth.GET("/user/:id/profile", accountHandler.GetProfile, authMiddleware)
	auth.PUT("/user/:id/profile", accountHandler.UpdateProfile, authMiddleware)

	// --- Finance routes (owner-scoped, auth required) ---
	user := e.Group("/user", authMiddleware)
	user.GET("/income", incomeHandler.List)
	user.POST("/income", incomeHandler.Create)
	user.GET("/income/:id", incomeHandler.Get)
	user.PUT("/income/:id", incomeHandler.Update)
	user.DELETE("/income/:id", incomeHandler.Delete)

	user.GET("/expenditure", expenditureHandler.List)
	user.POST("/expenditure", expenditureHandler.Create)
	user.GET("/expenditure/:id", expenditureHandler.Get)
	user.PUT("/expenditure/:id", expenditureHandler.Update)
	user.DELETE("/expenditure/:id", expenditureHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
