package models

import (
	"fmt"
	"maps"
)

// UserProfile is the identity payload returned by auth/me. It is kept opaque
// so the persisted snapshot round-trips whatever the backend sent.
type UserProfile map[string]any

// Clone returns a shallow copy. A nil profile stays nil.
func (p UserProfile) Clone() UserProfile {
	return maps.Clone(p)
}

func (p UserProfile) str(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Username returns the login name, or "" when absent.
func (p UserProfile) Username() string {
	return p.str("username")
}

// DisplayName prefers the full name and falls back to username, then email.
func (p UserProfile) DisplayName() string {
	for _, k := range []string{"full_name", "name", "username", "email"} {
		if s := p.str(k); s != "" {
			return s
		}
	}
	return ""
}

// User is a row of the users resource.
type User struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	RoleID     int64   `json:"role_id"`
	IsActive   bool    `json:"is_active"`
	AssetQuota *int    `json:"asset_quota,omitempty"`
	CreatedAt  *string `json:"created_at,omitempty"`
	UpdatedAt  *string `json:"updated_at,omitempty"`
}

// UserInput is the create/update body of the users resource.
// Password is required on create only.
type UserInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	RoleID     int64  `json:"role_id"`
	IsActive   *bool  `json:"is_active,omitempty"`
	AssetQuota *int   `json:"asset_quota,omitempty"`
}

// Tokens is the auth/login and auth/refresh response.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}
