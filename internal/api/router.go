package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/servihub/booking-api/internal/api/handler"
	"github.com/servihub/booking-api/internal/api/middleware"
	"github.com/servihub/booking-api/internal/core/ports"
	"github.com/servihub/booking-api/internal/core/service"
	"github.com/servihub/booking-api/internal/infrastructure/config"
	mongostore "github.com/servihub/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/servihub/booking-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is constructed by the caller so its worker lifecycle stays
// bound to the process context.
func NewRouter(db *mongo.Database, rdb *redis.Client, auditSink ports.EventSink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("booking_api"))

	// --- Dependencies ---
	store := mongostore.NewStore(db)
	revocations := redisdb.NewRevocationList(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(store, log)
	bookingService := service.NewBookingService(store, auditSink, log)

	authHandler := handler.NewAuthHandler(tokenService, revocations, cfg.TokenTTL, cfg.Env == "production", log)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	authRequired := middleware.Auth(tokenService, revocations, log)

	// --- Auth routes ---
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/logout", authHandler.ClearToken)

	// --- Catalog routes (read-only, public) ---
	e.GET("/services", catalogHandler.List)
	e.GET("/services/:id", catalogHandler.Get)

	// --- Booking routes ---
	// Mutations are unauthenticated by contract; only the owner-scoped
	// listing goes through the auth middleware.
	e.POST("/bookings", bookingHandler.Create)
	e.GET("/bookings", bookingHandler.List, authRequired)
	e.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
	e.DELETE("/bookings/:id", bookingHandler.Delete)

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)                 // liveness – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
