package uploads

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"courtside/internal/shared/config"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("imagekit credentials are not configured")

// UploadToken authenticates one client-side upload against the ImageKit
// API. The signature scheme (hex SHA1 HMAC over token+expire, keyed by
// the private key) is fixed by ImageKit's upload endpoint.
type UploadToken struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

type Service interface {
	MintUploadToken(now time.Time) (*UploadToken, error)
}

type service struct {
	config *config.ImageKitConfig
}

func NewService(cfg *config.ImageKitConfig) Service {
	return &service{config: cfg}
}

func (s *service) MintUploadToken(now time.Time) (*UploadToken, error) {
	if s.config.PrivateKey == "" || s.config.PublicKey == "" {
		return nil, ErrNotConfigured
	}

	token := uuid.NewString()
	expire := now.Add(s.config.TokenTTL).Unix()

	mac := hmac.New(sha1.New, []byte(s.config.PrivateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	signature := hex.EncodeToString(mac.Sum(nil))

	return &UploadToken{
		Token:     token,
		Expire:    expire,
		Signature: signature,
		PublicKey: s.config.PublicKey,
	}, nil
}
