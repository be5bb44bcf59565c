package auth

import "github.com/golang-jwt/jwt/v4"

// JWTClaims carries the actor identity inside access and refresh tokens.
// Subject holds the user or partner ID; Mobile is empty for partner tokens.
type JWTClaims struct {
	Mobile string `json:"mobile,omitempty"`
	Role   string `json:"role"`
	Type   string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenPair is an access/refresh token couple issued on login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // access token lifetime in seconds
}
