package bookings

import (
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookingsGroup := rg.Group("/bookings")
	{
		// Booking creation happens before the player has a session.
		bookingsGroup.POST("", controller.CreateBooking)

		// User booking history, looked up by mobile
		userAuth := bookingsGroup.Group("")
		userAuth.Use(middleware.JWTAuth())
		{
			userAuth.GET("/user/mobile/:mobile", controller.GetUserBookings)
		}

		// Partner dashboard booking management
		partnerOnly := bookingsGroup.Group("")
		partnerOnly.Use(middleware.JWTAuth(), middleware.RequirePartner())
		{
			partnerOnly.GET("/partner/:partnerId", controller.GetPartnerBookings)
			partnerOnly.GET("/partner/:partnerId/export", controller.ExportPartnerBookings)
			partnerOnly.POST("/:id/confirm", controller.ConfirmBooking)
			partnerOnly.DELETE("/:id", controller.CancelBooking)
		}
	}
}
