package routes

import (
	"os"
	"strconv"
	"time"

	"emptyleg-marketplace/cache"
	"emptyleg-marketplace/constants"
	airportController "emptyleg-marketplace/controllers/airport"
	authController "emptyleg-marketplace/controllers/auth"
	bookingController "emptyleg-marketplace/controllers/booking"
	flightController "emptyleg-marketplace/controllers/flight"
	notificationController "emptyleg-marketplace/controllers/notification"
	serverController "emptyleg-marketplace/controllers/server"
	"emptyleg-marketplace/logger"
	"emptyleg-marketplace/middleware"
	"emptyleg-marketplace/repository"
	airportService "emptyleg-marketplace/services/airport"
	authService "emptyleg-marketplace/services/auth"
	bookingService "emptyleg-marketplace/services/booking"
	flightService "emptyleg-marketplace/services/flight"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := repository.NewStore(db)
	asyncLogger := logger.NewAsyncLogger(db)

	accessTTL := time.Duration(envInt("ACCESS_TOKEN_TTL_MINUTES", 15)) * time.Minute
	refreshTTL := time.Duration(envInt("REFRESH_TOKEN_TTL_HOURS", 720)) * time.Hour
	searchTTL := time.Duration(envInt("AIRPORT_CACHE_TTL_SECONDS", 300)) * time.Second

	searchCache := cache.NewRedisCache(
		os.Getenv("REDIS_ADDR"),
		os.Getenv("REDIS_PASSWORD"),
		envInt("REDIS_DB", 0),
		searchTTL,
	)

	authCtrl := authController.NewAuthController(
		authService.NewService(store, os.Getenv("JWT_SECRET"), accessTTL, refreshTTL),
		asyncLogger,
	)
	flightCtrl := flightController.NewFlightController(flightService.NewService(store), asyncLogger)
	airportCtrl := airportController.NewAirportController(airportService.NewService(store, searchCache))
	bookingCtrl := bookingController.NewBookingController(bookingService.NewService(store), asyncLogger)
	notificationCtrl := notificationController.NewNotificationController(store)
	serverCtrl := serverController.NewServerController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	api := app.Group("/api")
	api.Get("/health", serverCtrl.Health)

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authCtrl.Register)
	authGroup.Post("/login", authCtrl.Login)
	authGroup.Post("/refresh", authCtrl.Refresh)
	authGroup.Post("/logout", middleware.RequireAuthentication(), authCtrl.Logout)
	authGroup.Get("/profile", middleware.RequireAuthentication(), authCtrl.Profile)

	/*=============================================================================
	| Flight Routes
	===============================================================================*/
	flightGroup := api.Group("/flights")
	flightGroup.Get("/", middleware.OptionalAuth(), flightCtrl.List)
	flightGroup.Post("/", middleware.RequireRoles(constants.RoleOperator), flightCtrl.Store)
	flightGroup.Get("/:id", middleware.OptionalAuth(), flightCtrl.Get)
	flightGroup.Put("/:id/review", middleware.RequireRoles(
		constants.RoleAdmin, constants.RoleSuperAdmin,
	), flightCtrl.Review)
	flightGroup.Delete("/:id", middleware.RequireRoles(
		constants.RoleOperator, constants.RoleAdmin, constants.RoleSuperAdmin,
	), flightCtrl.Cancel)

	/*=============================================================================
	| Airport Routes
	===============================================================================*/
	airportGroup := api.Group("/airports")
	airportGroup.Get("/search", airportCtrl.Search)
	airportGroup.Post("/", middleware.RequireRoles(
		constants.RoleOperator, constants.RoleAdmin, constants.RoleSuperAdmin,
	), airportCtrl.Store)
	airportGroup.Get("/mine", middleware.RequireRoles(
		constants.RoleOperator, constants.RoleAdmin, constants.RoleSuperAdmin,
	), airportCtrl.Mine)
	airportGroup.Get("/pending", middleware.RequireRoles(
		constants.RoleAdmin, constants.RoleSuperAdmin,
	), airportCtrl.Pending)
	airportGroup.Put("/:id/approve", middleware.RequireRoles(
		constants.RoleAdmin, constants.RoleSuperAdmin,
	), airportCtrl.Approve)
	airportGroup.Put("/:id/reject", middleware.RequireRoles(
		constants.RoleAdmin, constants.RoleSuperAdmin,
	), airportCtrl.Reject)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/", middleware.RequireRoles(constants.RoleCustomer), bookingCtrl.Store)
	bookingGroup.Get("/", middleware.RequireAuthentication(), bookingCtrl.Index)
	bookingGroup.Delete("/:id", middleware.RequireAuthentication(), bookingCtrl.Cancel)

	/*=============================================================================
	| Notification Routes
	===============================================================================*/
	notificationGroup := api.Group("/notifications").Use(middleware.RequireAuthentication())
	notificationGroup.Get("/", notificationCtrl.Index)
	notificationGroup.Put("/read-all", notificationCtrl.MarkAllRead)
	notificationGroup.Put("/:id/read", notificationCtrl.MarkRead)
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
