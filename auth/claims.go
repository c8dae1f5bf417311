package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims is the concrete implementation of AuthClaims. The custom members
// mirror the wire payload clients decode: {id, email, userType, name, iat, exp}.
type JWTClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"id,omitempty"`
	UserMail string `json:"email,omitempty"`
	FullName string `json:"name,omitempty"`
	Tier     string `json:"userType,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Email returns the email the token was issued for
func (c *JWTClaims) Email() string {
	return c.UserMail
}

// Name returns the user's display name
func (c *JWTClaims) Name() string {
	return c.FullName
}

// UserType returns the service tier carried by the token
func (c *JWTClaims) UserType() string {
	if c.Tier == "" {
		return UserTypeNormal
	}
	return c.Tier
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
