package auth

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

func (c *Controller) GenerateOTP(ctx *gin.Context) {
	var req GenerateOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	resp, err := c.service.GenerateOTP(ctx.Request.Context(), &req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidMobile) {
			statusCode = http.StatusBadRequest
		}
		response.Error(ctx, statusCode, "Failed to generate OTP", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "OTP sent successfully", resp)
}

func (c *Controller) VerifyOTP(ctx *gin.Context) {
	var req VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	resp, err := c.service.VerifyOTP(ctx.Request.Context(), &req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInvalidMobile):
			statusCode = http.StatusBadRequest
		case errors.Is(err, ErrInvalidOTP):
			statusCode = http.StatusUnauthorized
		case errors.Is(err, ErrTooManyAttempts):
			statusCode = http.StatusTooManyRequests
		}
		response.Error(ctx, statusCode, "OTP verification failed", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Login successful", resp)
}

func (c *Controller) PartnerLogin(ctx *gin.Context) {
	var req PartnerLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	resp, err := c.service.PartnerLogin(ctx.Request.Context(), &req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidCredentials) {
			statusCode = http.StatusUnauthorized
		}
		response.Error(ctx, statusCode, "Login failed", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Login successful", resp)
}

func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(ctx, http.StatusUnauthorized, "Failed to refresh token", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Token refreshed successfully", tokenPair)
}
