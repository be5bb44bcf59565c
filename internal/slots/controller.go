package slots

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

func (c *Controller) CreateSlots(ctx *gin.Context) {
	var req CreateSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	created, err := c.service.CreateSlots(ctx.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidWindow) || errors.Is(err, ErrDuplicateWindow) {
			statusCode = http.StatusBadRequest
		}
		response.Error(ctx, statusCode, "Failed to create slots", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Slots created successfully", created)
}

func (c *Controller) GetSlots(ctx *gin.Context) {
	venueID := ctx.Query("venueId")
	date := ctx.Query("date")
	if venueID == "" || date == "" {
		response.Error(ctx, http.StatusBadRequest, "venueId and date are required", nil)
		return
	}

	result, err := c.service.GetSlots(ctx.Request.Context(), venueID, date)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get slots", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Slots retrieved successfully", result)
}

func (c *Controller) DeleteSlot(ctx *gin.Context) {
	slotID := ctx.Query("slotId")
	if slotID == "" {
		response.Error(ctx, http.StatusBadRequest, "slotId is required", nil)
		return
	}

	err := c.service.DeleteSlot(ctx.Request.Context(), slotID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSlotNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrSlotBooked):
			statusCode = http.StatusConflict
		}
		response.Error(ctx, statusCode, "Failed to delete slot", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Slot deleted successfully", nil)
}
