package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnreadableToken = errors.New("token is not a readable JWT")

// TokenClaims is what the dashboard can learn from the bearer token it holds.
// The signature is never verified here: the remote API is the only judge of
// a token's validity.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt *time.Time
}

type sessionClaims struct {
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// ReadClaims decodes the payload of a JWT without checking its signature.
// Opaque tokens return ErrUnreadableToken.
func ReadClaims(token string) (*TokenClaims, error) {
	var claims sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, ErrUnreadableToken
	}

	out := &TokenClaims{Subject: claims.Subject, Role: claims.Role}
	if out.Role == "" && len(claims.Roles) > 0 {
		out.Role = claims.Roles[0]
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		out.ExpiresAt = &exp
	}
	return out, nil
}

// Expired reports whether the claims carry an expiry before now. Tokens
// without an expiry never expire from the dashboard's point of view.
func (c *TokenClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}
