package analytics

import (
	"net/http"

	"courtside/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetPartnerSummary(ctx *gin.Context) {
	partnerID := ctx.Param("partnerId")
	if partnerID == "" {
		response.Error(ctx, http.StatusBadRequest, "Partner ID is required", nil)
		return
	}

	summary, err := c.service.GetPartnerSummary(ctx.Request.Context(), partnerID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get partner summary", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Partner summary retrieved successfully", summary)
}
