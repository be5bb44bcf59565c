package partners

import (
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPartnerRoutes(rg *gin.RouterGroup, controller *Controller) {
	partnersGroup := rg.Group("/partners")
	partnersGroup.Use(middleware.JWTAuth(), middleware.RequirePartner())
	{
		partnersGroup.GET("/:partnerId", controller.GetProfile)
		partnersGroup.POST("/:partnerId/push-subscription", controller.SavePushSubscription)
		partnersGroup.DELETE("/push-subscription", controller.RemovePushSubscription)
	}
}
