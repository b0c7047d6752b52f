package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid user credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// User models an account that can authenticate against the API.
//
// Token and TokenExpiresAt hold the single active session token for the
// account: logins reuse the stored token while it is still valid and reissue
// it once expired. Neither the hash nor the session fields are ever
// serialized in responses.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	Role           string     `json:"role"`
	Token          string     `json:"-"`
	TokenExpiresAt *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasValidToken reports whether the stored session token can still be served.
// A token without an expiry is never valid.
func (u *User) HasValidToken(now time.Time) bool {
	return u.Token != "" && u.TokenExpiresAt != nil && now.Before(*u.TokenExpiresAt)
}

// ValidRole reports whether role names a known permission tier.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
