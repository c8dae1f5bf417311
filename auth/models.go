package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserType is the user's service tier
type UserType = string

const (
	// UserTypeNormal is the default tier
	UserTypeNormal UserType = "normal"
	// UserTypePremium is the paid tier
	UserTypePremium UserType = "premium"
)

// ParseUserType validates a tier label, falling back to "normal"
func ParseUserType(s string) (UserType, bool) {
	switch s {
	case UserTypeNormal, UserTypePremium:
		return s, true
	case "":
		return UserTypeNormal, true
	}
	return UserTypeNormal, false
}

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Type          UserType   `bun:"user_type,notnull" json:"user_type,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// PublicUser is the projection of a User that is safe to return to clients.
// The password hash never leaves the store through this struct.
type PublicUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// Public returns the client-facing projection of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		UserType: u.Type,
	}
}

// AsIdentity adapts the record to the Identity interface
func (u *User) AsIdentity() Identity {
	return userIdentity{u}
}

type userIdentity struct {
	user *User
}

func (i userIdentity) ID() string       { return i.user.ID.String() }
func (i userIdentity) Name() string     { return i.user.Name }
func (i userIdentity) Email() string    { return i.user.Email }
func (i userIdentity) UserType() string { return i.user.Type }
