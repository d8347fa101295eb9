package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cargobook/booking-system/docs"
	"github.com/cargobook/booking-system/internal/api/handler"
	"github.com/cargobook/booking-system/internal/api/middleware"
	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/service"
	mongodb "github.com/cargobook/booking-system/internal/infrastructure/db/mongo"
)

// Dependencies bundles everything the router needs to register routes.
type Dependencies struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	SequenceBase int64
	Dispatcher   handler.PaymentDispatcher
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Repositories ---
	shipmentRepo := mongodb.NewShipmentRepository(deps.Mongo)
	addressRepo := mongodb.NewAddressRepository(deps.Mongo)
	authRepo := mongodb.NewAuthRepository(deps.Mongo)
	sequenceRepo := mongodb.NewSequenceRepository(deps.Mongo, deps.SequenceBase)

	// --- Services ---
	ids := service.NewTrackingIDGenerator(sequenceRepo)
	shipmentService := service.NewShipmentService(shipmentRepo, addressRepo, ids, deps.Logger)
	trackingService := service.NewTrackingService(shipmentRepo, deps.Logger)
	addressService := service.NewAddressService(addressRepo, deps.Logger)
	authService := service.NewAuthService(authRepo, deps.JWTSecret, 24*time.Hour)

	// --- Handlers ---
	shipmentHandler := handler.NewShipmentHandler(shipmentService, deps.Dispatcher)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	addressHandler := handler.NewAddressHandler(addressService)
	authHandler := handler.NewAuthHandler(authService)

	authMW := middleware.Auth(deps.JWTSecret)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleClient)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public routes: booking and tracking need no token. A booking sent
	// with a valid token is attributed to the caller, so the optional-auth
	// variant runs on create. ---
	e.POST("/v1/shipments", shipmentHandler.Create, middleware.AuthOptional(deps.JWTSecret))
	e.GET("/v1/tracking", trackingHandler.Track)

	// --- Authenticated shipment routes ---
	shipments := e.Group("/v1/shipments", authMW, anyRole)
	shipments.GET("", shipmentHandler.List)
	shipments.GET("/:id", shipmentHandler.Get)
	shipments.PUT("/:id", shipmentHandler.Update)
	shipments.POST("/:id/payment", shipmentHandler.ConfirmPayment, adminOnly)

	// --- Address book (always scoped to the caller) ---
	addresses := e.Group("/v1/addresses", authMW, anyRole)
	addresses.POST("", addressHandler.Create)
	addresses.GET("", addressHandler.List)
	addresses.PUT("/:uuid/default", addressHandler.SetDefault)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
