package ports

import (
	"context"
	"time"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// FindByUsernameOrToken returns the user whose username or stored session
	// token equals value. Returns domain.ErrUserNotFound when no row matches.
	FindByUsernameOrToken(ctx context.Context, value string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateToken persists a freshly issued session token on the user row,
	// replacing whichever token was stored before.
	UpdateToken(ctx context.Context, id int64, token string, expiresAt time.Time) error
}
