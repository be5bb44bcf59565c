// api/routes/router.go
package routes

import (
	"context"
	"net/http"
	"time"

	"courtside/internal/analytics"
	"courtside/internal/auth"
	"courtside/internal/bookings"
	"courtside/internal/notifications"
	"courtside/internal/partners"
	"courtside/internal/shared/config"
	"courtside/internal/shared/database"
	"courtside/internal/slots"
	"courtside/internal/uploads"
	"courtside/internal/users"
	"courtside/internal/venues"
	"courtside/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config              *config.Config
	db                  *database.DB
	cacheService        cache.Service
	notificationService notifications.NotificationService

	// Shared repositories, injected across modules
	userRepo    users.Repository
	partnerRepo partners.Repository
	bookingRepo bookings.Repository
}

// NewRouter creates a new router instance. notificationService may be
// nil when the pipeline failed to initialize; booking creation then
// proceeds without push delivery.
func NewRouter(cfg *config.Config, db *database.DB, notificationService notifications.NotificationService) *Router {
	return &Router{
		config:              cfg,
		db:                  db,
		cacheService:        cache.NewService(db.GetRedis()),
		notificationService: notificationService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared repositories first, the modules below share them
	r.userRepo = users.NewRepository(r.db.GetPostgreSQL())
	r.partnerRepo = partners.NewRepository(r.db.GetPostgreSQL())
	r.bookingRepo = bookings.NewRepository(r.db.GetPostgreSQL())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupPartnerRoutes(api)
		r.setupVenueRoutes(api)
		r.setupSlotRoutes(api)
		r.setupBookingRoutes(api)
		r.setupAnalyticsRoutes(api)
		r.setupUploadRoutes(api)
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "courtside-backend",
			})
			return
		}

		notificationsStatus := "disabled"
		if r.notificationService != nil {
			notificationsStatus = "healthy"
			if err := r.notificationService.HealthCheck(c.Request.Context()); err != nil {
				notificationsStatus = "unhealthy"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"notifications": notificationsStatus,
			"timestamp":     time.Now(),
			"service":       "courtside-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "operational",
			"timestamp": time.Now(),
		})
	})
}

// setupAuthRoutes configures OTP login, partner login and token refresh
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.userRepo, r.partnerRepo, r.db.GetRedis(), r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

// setupPartnerRoutes configures partner profile and push subscription routes
func (r *Router) setupPartnerRoutes(rg *gin.RouterGroup) {
	partnerService := partners.NewService(r.partnerRepo)
	partnerController := partners.NewController(partnerService)

	partners.SetupPartnerRoutes(rg, partnerController)
}

// setupVenueRoutes configures venue management routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo, r.cacheService)
	venueController := venues.NewController(venueService)

	venues.SetupVenueRoutes(rg, venueController)
}

// setupSlotRoutes configures slot inventory routes
func (r *Router) setupSlotRoutes(rg *gin.RouterGroup) {
	slotRepo := slots.NewRepository(r.db.GetPostgreSQL())
	slotService := slots.NewService(slotRepo, r.cacheService)
	slotController := slots.NewController(slotService)

	slots.SetupSlotRoutes(rg, slotController)
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	var notifier bookings.Notifier
	if r.notificationService != nil {
		notifier = &bookingNotifier{service: r.notificationService}
	}

	bookingService := bookings.NewService(r.bookingRepo, r.userRepo, r.cacheService, notifier)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupAnalyticsRoutes configures the partner dashboard summary route
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsService := analytics.NewService(r.bookingRepo, r.cacheService)
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}

// setupUploadRoutes configures the ImageKit upload token route
func (r *Router) setupUploadRoutes(rg *gin.RouterGroup) {
	uploadService := uploads.NewService(&r.config.ImageKit)
	uploadController := uploads.NewController(uploadService)

	uploads.SetupUploadRoutes(rg, uploadController)
}

// bookingNotifier adapts the notification service to the narrow
// interface the booking module expects, avoiding an import cycle.
type bookingNotifier struct {
	service notifications.NotificationService
}

func (n *bookingNotifier) PublishBookingCreated(ctx context.Context, event bookings.BookingCreatedEvent) error {
	partnerID, err := uuid.Parse(event.PartnerID)
	if err != nil {
		return err
	}
	return n.service.SendNewBookingNotification(ctx, partnerID, event.BookingID, event.VenueName, event.Date, event.Amount)
}
