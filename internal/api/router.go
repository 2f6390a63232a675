package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/faojul/account-service/internal/api/handler"
	"github.com/faojul/account-service/internal/api/middleware"
	"github.com/faojul/account-service/internal/core/service"
	"github.com/faojul/account-service/internal/infrastructure/config"
	mongodb "github.com/faojul/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/faojul/account-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	accountCache := redisdb.NewAccountCache(rdb, accountRepo, log)
	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)
	accountService := service.NewAccountService(accountRepo, hasher, tokenService, log)
	accountHandler := handler.NewAccountHandler(accountService)
	authMiddleware := middleware.Auth(tokenService, accountCache)

	// --- Account routes ---
	e.POST("/users", accountHandler.Register)
	e.POST("/users/token", accountHandler.Login)
	e.GET("/users", accountHandler.List, authMiddleware)
	e.PUT("/users/:id", accountHandler.Update, authMiddleware)
	e.DELETE("/users/:id", accountHandler.Delete, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
