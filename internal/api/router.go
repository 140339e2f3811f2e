package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barcraft/backoffice/internal/api/handler"
	"github.com/barcraft/backoffice/internal/api/middleware"
	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/infrastructure/http/handlers"
	"github.com/barcraft/backoffice/internal/token"
)

// Deps carries everything the router needs. All dependencies are constructed
// once at startup (see cmd/server) and injected here; nothing is global.
type Deps struct {
	DB             *mongo.Database
	Redis          *redis.Client
	Tokens         *token.Manager
	AuthService    ports.AuthService
	GalleryService ports.GalleryService
	LeadService    ports.LeadService
	LeadQueue      handler.LeadEnqueuer
	Revocations    middleware.RevocationChecker
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("barcraft"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	adminUserHandler := handler.NewAdminUserHandler(deps.AuthService)
	galleryHandler := handler.NewGalleryHandler(deps.GalleryService)
	leadHandler := handler.NewLeadHandler(deps.LeadQueue, deps.LeadService)

	authRequired := middleware.Auth(deps.Tokens, deps.Revocations, deps.Log)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOrAdmin := middleware.RBAC(domain.RoleStaff, domain.RoleAdmin)

	// --- Public auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/auth/refresh", authHandler.Refresh)

	// --- Protected auth routes ---
	e.GET("/api/me", authHandler.Me, authRequired)
	e.POST("/api/logout", authHandler.Logout, authRequired)

	// --- Admin user management ---
	e.PUT("/api/admin/users/:id/status", adminUserHandler.UpdateStatus, authRequired, adminOnly)
	e.PUT("/api/admin/users/:id/role", adminUserHandler.UpdateRole, authRequired, adminOnly)

	// --- Gallery ---
	e.GET("/api/gallery", galleryHandler.ListPublic)
	e.POST("/api/gallery", galleryHandler.Submit, authRequired, staffOrAdmin)
	e.GET("/api/admin/gallery", galleryHandler.ListAll, authRequired, adminOnly)
	e.PUT("/api/admin/gallery/:id/approve", galleryHandler.Approve, authRequired, adminOnly)
	e.PUT("/api/admin/gallery/:id/reject", galleryHandler.Reject, authRequired, adminOnly)

	// --- Public lead intake ---
	e.POST("/api/bookings", leadHandler.Booking)
	e.POST("/api/contact", leadHandler.Contact)
	e.POST("/api/newsletter", leadHandler.Newsletter)
	e.GET("/api/admin/leads", leadHandler.List, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
