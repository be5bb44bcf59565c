package auth

import (
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/generate-otp", controller.GenerateOTP)
		authGroup.POST("/verify-otp", controller.VerifyOTP)
		authGroup.POST("/partner/login", controller.PartnerLogin)
		authGroup.POST("/refresh", controller.RefreshToken)
	}
}
