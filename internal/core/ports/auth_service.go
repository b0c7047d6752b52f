package ports

import (
	"context"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

// Credentials is the transient login input. The plaintext password only ever
// lives in this struct; it is hashed before anything is persisted.
type Credentials struct {
	Username string
	Password string
}

// RegisterInput extends credentials with an optional role. An empty role
// defaults to domain.RoleUser.
type RegisterInput struct {
	Credentials
	Role string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Login verifies the credentials and returns a bearer token. The stored
	// session token is reused while still valid; otherwise a new one is
	// signed and persisted.
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}
