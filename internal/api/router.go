package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roamly/booking-api/internal/api/handler"
	"github.com/roamly/booking-api/internal/api/middleware"
	"github.com/roamly/booking-api/internal/core/domain"
	"github.com/roamly/booking-api/internal/core/ports"
	"github.com/roamly/booking-api/internal/core/service"
	"github.com/roamly/booking-api/internal/core/token"
	mongodb "github.com/roamly/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roamly/booking-api/internal/infrastructure/db/redis"
	"github.com/roamly/booking-api/internal/session"
)

// Deps carries everything the router needs to assemble the service graph.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens *token.Service
	Audit  ports.AuditSink
	// SecureCookies marks session cookies Secure; false only in development.
	SecureCookies bool
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	bookingRepo := mongodb.NewBookingRepository(deps.DB)
	throttle := redisdb.NewLoginThrottle(deps.Redis)

	authService := service.NewAuthService(userRepo, deps.Tokens, throttle, deps.Audit, deps.Logger)
	bookingService := service.NewBookingService(bookingRepo, deps.Logger)

	cookies := session.Manager{Secure: deps.SecureCookies, TTL: deps.Tokens.TTL()}
	authHandler := handler.NewAuthHandler(authService, cookies)
	bookingHandler := handler.NewBookingHandler(bookingService)

	requireAuth := middleware.Auth(deps.Tokens)
	optionalAuth := middleware.OptionalAuth(deps.Tokens)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, optionalAuth)
	e.GET("/profile", authHandler.Profile, requireAuth)
	e.GET("/me", authHandler.Profile, requireAuth) // alias

	// --- Booking routes ---
	e.POST("/bookings", bookingHandler.Create, requireAuth)
	e.GET("/bookings", bookingHandler.List, requireAuth)
	e.GET("/admin/bookings", bookingHandler.ListAll, requireAuth, middleware.RBAC(domain.RoleAdmin))

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness - is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness - are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
