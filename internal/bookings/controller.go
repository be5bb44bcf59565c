package bookings

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

func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	booking, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			statusCode = http.StatusConflict
		case errors.Is(err, ErrSlotMissing):
			statusCode = http.StatusBadRequest
		}
		response.Error(ctx, statusCode, "Failed to create booking", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking created successfully", booking)
}

func (c *Controller) GetPartnerBookings(ctx *gin.Context) {
	partnerID := ctx.Param("partnerId")
	if partnerID == "" {
		response.Error(ctx, http.StatusBadRequest, "Partner ID is required", nil)
		return
	}

	var query ViewQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := c.service.GetPartnerView(ctx.Request.Context(), partnerID, query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get bookings", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Bookings retrieved successfully", result)
}

func (c *Controller) GetUserBookings(ctx *gin.Context) {
	mobile := ctx.Param("mobile")
	if mobile == "" {
		response.Error(ctx, http.StatusBadRequest, "Mobile is required", nil)
		return
	}

	var query ViewQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := c.service.GetUserView(ctx.Request.Context(), mobile, query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get bookings", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Bookings retrieved successfully", result)
}

func (c *Controller) ConfirmBooking(ctx *gin.Context) {
	bookingID := ctx.Param("id")
	if bookingID == "" {
		response.Error(ctx, http.StatusBadRequest, "Booking ID is required", nil)
		return
	}

	booking, err := c.service.Confirm(ctx.Request.Context(), bookingID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrBookingNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to confirm booking", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Booking confirmed successfully", booking)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID := ctx.Param("id")
	if bookingID == "" {
		response.Error(ctx, http.StatusBadRequest, "Booking ID is required", nil)
		return
	}

	err := c.service.Cancel(ctx.Request.Context(), bookingID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrBookingNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to cancel booking", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Booking cancelled successfully", nil)
}

func (c *Controller) ExportPartnerBookings(ctx *gin.Context) {
	partnerID := ctx.Param("partnerId")
	if partnerID == "" {
		response.Error(ctx, http.StatusBadRequest, "Partner ID is required", nil)
		return
	}

	var query ViewQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	data, filename, err := c.service.ExportPartnerCSV(ctx.Request.Context(), partnerID, query)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrNothingToExport) {
			statusCode = http.StatusBadRequest
		}
		response.Error(ctx, statusCode, "Failed to export bookings", err.Error())
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", data)
}
