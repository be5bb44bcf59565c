package venues

import (
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	RegisterValidations()

	venuesGroup := rg.Group("/venues")
	{
		// Public browsing routes (home page)
		venuesGroup.GET("/city/:city", controller.GetVenuesByCity)
		venuesGroup.GET("/:venueId", controller.GetVenue)

		// Partner dashboard routes
		partnerOnly := venuesGroup.Group("")
		partnerOnly.Use(middleware.JWTAuth(), middleware.RequirePartner())
		{
			partnerOnly.POST("", controller.CreateVenue)
			partnerOnly.GET("/partner/:partnerId", controller.GetVenuesByPartner)
			partnerOnly.PUT("/:venueId", controller.UpdateVenue)
		}
	}
}
