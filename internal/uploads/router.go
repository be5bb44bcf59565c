package uploads

import (
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Payment screenshots are uploaded before the user has a session, so
	// the token endpoint is public; abuse is contained by rate limiting.
	imagekitGroup := rg.Group("/imagekit")
	{
		imagekitGroup.POST("/upload-token", controller.MintUploadToken)
	}
}
