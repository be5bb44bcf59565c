package uploads

import (
	"errors"
	"net/http"
	"time"

	"courtside/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) MintUploadToken(ctx *gin.Context) {
	token, err := c.service.MintUploadToken(time.Now())
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrNotConfigured) {
			statusCode = http.StatusServiceUnavailable
		}
		response.Error(ctx, statusCode, "Failed to generate upload token", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Upload token generated successfully", token)
}
