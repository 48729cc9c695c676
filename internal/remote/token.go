package remote

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds the claims the mirror needs from an access token.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// Expired reports whether the token is past its expiry at now.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// ParseAccessToken reads the subject and expiry of a JWT access token.
// The signature is not verified: the backend verifies it on every call,
// the client only needs the owner id and a local expiry check.
func ParseAccessToken(token string) (TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse access token: %w", err)
	}
	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// ResolveOwner returns the owner id for profile rows: the configured id,
// else the access token's subject.
func ResolveOwner(cfg Config, now time.Time) (string, error) {
	if cfg.OwnerID != "" {
		return cfg.OwnerID, nil
	}
	if cfg.AccessToken == "" {
		return "", nil
	}
	info, err := ParseAccessToken(cfg.AccessToken)
	if err != nil {
		return "", err
	}
	if info.Expired(now) {
		return "", ErrTokenExpired
	}
	return info.Subject, nil
}
