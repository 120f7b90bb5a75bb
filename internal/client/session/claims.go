package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the console reads out of an access token for display.
// The signature is not verified; the backend remains the authority.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token has an expiry before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// InspectToken decodes the claims of a JWT without verifying it.
func InspectToken(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("inspect token: %w", err)
	}

	var c Claims
	if sub, ok := mc["sub"]; ok && sub != nil {
		switch v := sub.(type) {
		case string:
			c.Subject = v
		case float64:
			c.Subject = fmt.Sprintf("%.0f", v)
		default:
			c.Subject = fmt.Sprint(v)
		}
	}

	exp, err := mc.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("inspect token: %w", err)
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
