package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vigilia/contracts-api/internal/api/handler"
	"github.com/vigilia/contracts-api/internal/api/middleware"
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/service"
	mongodb "github.com/vigilia/contracts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vigilia/contracts-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, broker *app.Broker, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("contracts"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	contractRepo := mongodb.NewContractRepository(db)

	sessionStore := redisdb.NewSessionStore(rdb)
	guard := redisdb.NewSubmitGuard(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	accountService := service.NewAccountService(catalogRepo, addressRepo, contractRepo, log)
	contractService := service.NewContractService(contractRepo, catalogRepo, addressRepo, log)
	addressService := service.NewAddressService(addressRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, broker)
	accountHandler := handler.NewAccountHandler(accountService)
	addressHandler := handler.NewAddressHandler(addressService, sessionStore, guard)
	contractHandler := handler.NewContractHandler(contractService, sessionStore, guard)
	sessionHandler := handler.NewSessionHandler(sessionStore, accountService, catalogRepo)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/overview", accountHandler.Overview)
	v1.POST("/addresses", addressHandler.Create)
	v1.POST("/contracts", contractHandler.Create)
	v1.POST("/contracts/:id/renew", contractHandler.Renew)
	v1.DELETE("/contracts/:id", contractHandler.Delete)
	v1.GET("/contracts/:id/screen", contractHandler.Details)
	v1.POST("/session/navigate", sessionHandler.Navigate)
	v1.POST("/session/cart/toggle", sessionHandler.ToggleCart)
	v1.GET("/session/screen", sessionHandler.Screen)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
