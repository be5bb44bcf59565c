package slots

import (
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSlotRoutes(rg *gin.RouterGroup, controller *Controller) {
	slotsGroup := rg.Group("/slots")
	{
		// Public: players browse availability before booking
		slotsGroup.GET("", controller.GetSlots)

		// Partner dashboard management
		partnerOnly := slotsGroup.Group("")
		partnerOnly.Use(middleware.JWTAuth(), middleware.RequirePartner())
		{
			partnerOnly.POST("", controller.CreateSlots)
			partnerOnly.DELETE("", controller.DeleteSlot)
		}
	}
}
