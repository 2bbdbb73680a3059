package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cloudpebble/cptui/internal/errors"
)

// Claims are the ID token fields shown in the UI and logs.
type Claims struct {
	Email     string
	Subject   string
	ExpiresAt time.Time
}

type idTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseClaims reads token's claims without verifying its signature. The
// server verifies the token during the exchange.
func ParseClaims(token string) (Claims, error) {
	var c idTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Claims{}, errors.E(errors.Op("auth.ParseClaims"), errors.KindInvalid, err)
	}
	out := Claims{Email: c.Email, Subject: c.Subject}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}

// Expired reports whether the claims carry an expiry before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
