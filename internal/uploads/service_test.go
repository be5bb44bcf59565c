package uploads

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"testing"
	"time"

	"courtside/internal/shared/config"
)

func TestMintUploadToken(t *testing.T) {
	cfg := &config.ImageKitConfig{
		PublicKey:  "public_test",
		PrivateKey: "private_test",
		TokenTTL:   10 * time.Minute,
	}
	svc := NewService(cfg)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := svc.MintUploadToken(now)
	if err != nil {
		t.Fatalf("MintUploadToken() error = %v", err)
	}

	if token.Expire != now.Add(cfg.TokenTTL).Unix() {
		t.Errorf("expire = %d, want %d", token.Expire, now.Add(cfg.TokenTTL).Unix())
	}
	if token.PublicKey != cfg.PublicKey {
		t.Errorf("publicKey = %q, want %q", token.PublicKey, cfg.PublicKey)
	}

	// The signature must verify against ImageKit's documented scheme.
	mac := hmac.New(sha1.New, []byte(cfg.PrivateKey))
	mac.Write([]byte(token.Token + strconv.FormatInt(token.Expire, 10)))
	want := hex.EncodeToString(mac.Sum(nil))
	if token.Signature != want {
		t.Errorf("signature = %q, want %q", token.Signature, want)
	}
}

func TestMintUploadTokenUnique(t *testing.T) {
	svc := NewService(&config.ImageKitConfig{
		PublicKey:  "public_test",
		PrivateKey: "private_test",
		TokenTTL:   time.Minute,
	})

	a, _ := svc.MintUploadToken(time.Now())
	b, _ := svc.MintUploadToken(time.Now())
	if a.Token == b.Token {
		t.Error("two minted tokens share the same nonce")
	}
}

func TestMintUploadTokenUnconfigured(t *testing.T) {
	svc := NewService(&config.ImageKitConfig{})
	_, err := svc.MintUploadToken(time.Now())
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}
