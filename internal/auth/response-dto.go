package auth

// GenerateOTPResponse acknowledges that an OTP was issued. DevOTP is only
// populated outside production since SMS delivery is stubbed in development.
type GenerateOTPResponse struct {
	Mobile    string `json:"mobile"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
	DevOTP    string `json:"devOtp,omitempty"`
}

// UserAuthResponse is returned on successful OTP verification.
type UserAuthResponse struct {
	UserID       string `json:"userId"`
	Mobile       string `json:"mobile"`
	Name         string `json:"name,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// PartnerAuthResponse is returned on successful partner login.
type PartnerAuthResponse struct {
	PartnerID    string `json:"partnerId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
