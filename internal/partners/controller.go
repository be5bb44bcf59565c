package partners

import (
	"errors"
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

func (c *Controller) GetProfile(ctx *gin.Context) {
	partnerID := ctx.Param("partnerId")
	if partnerID == "" {
		response.Error(ctx, http.StatusBadRequest, "Partner ID is required", nil)
		return
	}

	partner, err := c.service.GetProfile(ctx.Request.Context(), partnerID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrPartnerNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to get partner", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Partner retrieved successfully", partner)
}

func (c *Controller) SavePushSubscription(ctx *gin.Context) {
	partnerID := ctx.Param("partnerId")
	if partnerID == "" {
		response.Error(ctx, http.StatusBadRequest, "Partner ID is required", nil)
		return
	}

	// A partner may only register subscriptions on its own account.
	if subjectID, exists := ctx.Get("subject_id"); exists && subjectID != partnerID {
		response.Error(ctx, http.StatusForbidden, "Cannot manage subscriptions for another partner", nil)
		return
	}

	var req SavePushSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}
	if req.UserAgent == "" {
		req.UserAgent = ctx.Request.UserAgent()
	}

	sub, err := c.service.SavePushSubscription(ctx.Request.Context(), partnerID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrPartnerNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to save push subscription", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Push subscription saved successfully", sub)
}

func (c *Controller) RemovePushSubscription(ctx *gin.Context) {
	var req RemovePushSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	if err := c.service.RemovePushSubscription(ctx.Request.Context(), req.Endpoint); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to remove push subscription", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Push subscription removed successfully", nil)
}
