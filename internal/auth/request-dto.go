package auth

// GenerateOTPRequest starts an OTP login for a mobile number.
type GenerateOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

// VerifyOTPRequest completes an OTP login. Name is optional and only
// stored on first login.
type VerifyOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
	Name   string `json:"name"`
}

// PartnerLoginRequest is the email/password login for venue operators.
type PartnerLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
