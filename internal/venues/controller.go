package venues

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

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	// The authenticated partner can only list venues on its own account.
	if subjectID, exists := ctx.Get("subject_id"); exists && subjectID != req.PartnerID {
		response.Error(ctx, http.StatusForbidden, "Cannot create venues for another partner", nil)
		return
	}

	venue, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidHours) {
			statusCode = http.StatusBadRequest
		}
		response.Error(ctx, statusCode, "Failed to create venue", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Venue created successfully", venue)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	venueID := ctx.Param("venueId")
	if venueID == "" {
		response.Error(ctx, http.StatusBadRequest, "Venue ID is required", nil)
		return
	}

	venue, err := c.service.GetByID(ctx.Request.Context(), venueID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrVenueNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to get venue", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Venue retrieved successfully", venue)
}

func (c *Controller) GetVenuesByCity(ctx *gin.Context) {
	city := ctx.Param("city")
	if city == "" {
		response.Error(ctx, http.StatusBadRequest, "City is required", nil)
		return
	}

	venues, err := c.service.GetByCity(ctx.Request.Context(), city)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get venues", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Venues retrieved successfully", venues)
}

func (c *Controller) GetVenuesByPartner(ctx *gin.Context) {
	partnerID := ctx.Param("partnerId")
	if partnerID == "" {
		response.Error(ctx, http.StatusBadRequest, "Partner ID is required", nil)
		return
	}

	venues, err := c.service.GetByPartner(ctx.Request.Context(), partnerID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get venues", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Venues retrieved successfully", venues)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	venueID := ctx.Param("venueId")
	if venueID == "" {
		response.Error(ctx, http.StatusBadRequest, "Venue ID is required", nil)
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	partnerID, _ := ctx.Get("subject_id")
	partnerIDStr, _ := partnerID.(string)

	venue, err := c.service.Update(ctx.Request.Context(), venueID, partnerIDStr, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrVenueNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrNotVenueOwner):
			statusCode = http.StatusForbidden
		case errors.Is(err, ErrInvalidHours):
			statusCode = http.StatusBadRequest
		}
		response.Error(ctx, statusCode, "Failed to update venue", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Venue updated successfully", venue)
}
