package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storelabs/store-api/docs"
	"github.com/storelabs/store-api/internal/api/handler"
	"github.com/storelabs/store-api/internal/api/middleware"
	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/service"
	"github.com/storelabs/store-api/internal/infrastructure/config"
	mongodb "github.com/storelabs/store-api/internal/infrastructure/db/mongo"
)

const tokenTTL = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL, cfg.AllowLegacyPasswords)
	catalogService := service.NewCatalogService(productRepo)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/register", authHandler.Register, middleware.ValidateCredentials)
	e.POST("/login", authHandler.Login, middleware.ValidateCredentials)
	e.POST("/adminlogin", authHandler.AdminLogin, middleware.ValidateCredentials)
	e.GET("/see", authHandler.Users)

	// --- Authenticated routes ---
	e.GET("/products", productHandler.List, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleClient))

	adminAPI := e.Group("/api", auth, middleware.RBAC(domain.RoleAdmin))
	adminAPI.POST("/addProducts", productHandler.Add)
	adminAPI.PUT("/chngProduct/:id", productHandler.Update)
	adminAPI.DELETE("/delProduct/:id", productHandler.Delete)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?

	return e
}
