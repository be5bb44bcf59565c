package analytics

import (
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller *Controller) {
	analyticsGroup := rg.Group("/analytics")
	analyticsGroup.Use(middleware.JWTAuth(), middleware.RequirePartner())
	{
		analyticsGroup.GET("/partner/:partnerId/summary", controller.GetPartnerSummary)
	}
}
