package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"courtside/internal/partners"
	"courtside/internal/shared/config"
	"courtside/internal/shared/constants"
	"courtside/internal/shared/middleware"
	"courtside/internal/users"
	"courtside/pkg/logger"
)

var (
	ErrInvalidMobile      = errors.New("mobile must be a 10 digit number")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrTooManyAttempts    = errors.New("too many OTP attempts, request a new OTP")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	GenerateOTP(ctx context.Context, req *GenerateOTPRequest) (*GenerateOTPResponse, error)
	VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*UserAuthResponse, error)
	PartnerLogin(ctx context.Context, req *PartnerLoginRequest) (*PartnerAuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	userRepo    users.Repository
	partnerRepo partners.Repository
	redis       *redis.Client
	config      *config.Config
	log         *logger.Logger
}

func NewService(userRepo users.Repository, partnerRepo partners.Repository, redisClient *redis.Client, cfg *config.Config) Service {
	return &service{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		redis:       redisClient,
		config:      cfg,
		log:         logger.GetDefault(),
	}
}

func (s *service) GenerateOTP(ctx context.Context, req *GenerateOTPRequest) (*GenerateOTPResponse, error) {
	if !isValidMobile(req.Mobile) {
		return nil, ErrInvalidMobile
	}

	otp, err := generateNumericOTP(s.config.OTP.Length)
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	// Store the challenge and reset the attempt counter. The TTL is the
	// single source of truth for OTP expiry.
	otpKey := constants.BuildOTPKey(req.Mobile)
	attemptsKey := constants.BuildOTPAttemptsKey(req.Mobile)

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, otpKey, otp, s.config.OTP.TTL)
	pipe.Del(ctx, attemptsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	// SMS delivery is handled by an external gateway in production. In
	// development the OTP is logged and echoed back for manual testing.
	s.log.InfoWithContext(ctx, "OTP issued", map[string]interface{}{
		"mobile": req.Mobile,
	})

	resp := &GenerateOTPResponse{
		Mobile:    req.Mobile,
		ExpiresIn: int64(s.config.OTP.TTL.Seconds()),
	}
	if !s.config.IsProduction() {
		resp.DevOTP = otp
	}
	return resp, nil
}

func (s *service) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*UserAuthResponse, error) {
	if !isValidMobile(req.Mobile) {
		return nil, ErrInvalidMobile
	}

	otpKey := constants.BuildOTPKey(req.Mobile)
	attemptsKey := constants.BuildOTPAttemptsKey(req.Mobile)

	stored, err := s.redis.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrInvalidOTP
		}
		return nil, fmt.Errorf("failed to read OTP: %w", err)
	}

	// Count the attempt before comparing so a flood of wrong guesses
	// burns the challenge even if requests race.
	attempts, err := s.redis.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to track OTP attempts: %w", err)
	}
	s.redis.Expire(ctx, attemptsKey, s.config.OTP.TTL)

	if attempts > int64(s.config.OTP.MaxAttempts) {
		s.redis.Del(ctx, otpKey, attemptsKey)
		s.log.LogAuthFailure(ctx, "otp attempts exhausted", req.Mobile)
		return nil, ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.OTP)) != 1 {
		s.log.LogAuthFailure(ctx, "otp mismatch", req.Mobile)
		return nil, ErrInvalidOTP
	}

	// Success: the challenge is single-use.
	s.redis.Del(ctx, otpKey, attemptsKey)

	user, err := s.userRepo.GetOrCreateByMobile(ctx, req.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	if req.Name != "" && user.Name == "" {
		if err := s.userRepo.UpdateName(ctx, req.Mobile, req.Name); err == nil {
			user.Name = req.Name
		}
	}

	tokenPair, err := s.generateTokenPair(user.ID.String(), user.Mobile, middleware.RoleUser)
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "otp")

	return &UserAuthResponse{
		UserID:       user.ID.String(),
		Mobile:       user.Mobile,
		Name:         user.Name,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) PartnerLogin(ctx context.Context, req *PartnerLoginRequest) (*PartnerAuthResponse, error) {
	partner, err := s.partnerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(req.Password)); err != nil {
		s.log.LogAuthFailure(ctx, "partner password mismatch", req.Email)
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(partner.ID.String(), "", middleware.RolePartner)
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, partner.ID.String(), "partner_password")

	return &PartnerAuthResponse{
		PartnerID:    partner.ID.String(),
		Name:         partner.Name,
		Email:        partner.Email,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != "refresh" {
		return nil, ErrInvalidToken
	}

	// Verify the actor still exists before minting a new pair.
	switch claims.Role {
	case middleware.RoleUser:
		if _, err := s.userRepo.GetByMobile(ctx, claims.Mobile); err != nil {
			return nil, ErrInvalidToken
		}
	case middleware.RolePartner:
		partnerID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, ErrInvalidToken
		}
		if _, err := s.partnerRepo.GetByID(ctx, partnerID); err != nil {
			return nil, ErrInvalidToken
		}
	default:
		return nil, ErrInvalidToken
	}

	return s.generateTokenPair(claims.Subject, claims.Mobile, claims.Role)
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) generateTokenPair(subjectID, mobile, role string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := JWTClaims{
		Mobile: mobile,
		Role:   role,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "courtside",
			Subject:   subjectID,
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := JWTClaims{
		Mobile: mobile,
		Role:   role,
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.RefreshExpiresIn)),
			Issuer:    "courtside",
			Subject:   subjectID,
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// isValidMobile accepts exactly 10 ASCII digits.
func isValidMobile(mobile string) bool {
	if len(mobile) != 10 {
		return false
	}
	for _, c := range mobile {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// generateNumericOTP draws each digit from crypto/rand.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
