package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomyolivera/star-wars-api/internal/api/metrics"
	"github.com/tomyolivera/star-wars-api/internal/core/domain"
	"github.com/tomyolivera/star-wars-api/internal/core/ports"
	"github.com/tomyolivera/star-wars-api/internal/pkg/password"
	"github.com/tomyolivera/star-wars-api/internal/pkg/token"
)

// AuthService implements registration and login on top of the user store.
type AuthService struct {
	users  ports.UserRepository
	issuer *token.Issuer
	log    zerolog.Logger

	// now is swapped out in tests to exercise token expiry.
	now func() time.Time
}

func NewAuthService(users ports.UserRepository, issuer *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, log: log, now: time.Now}
}

// Login verifies the credentials and returns a bearer token. While the
// stored session token is still valid it is returned unchanged; once
// expired (or absent) a new token is signed and persisted on the user row,
// so each account holds at most one acceptable token at a time.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsernameOrToken(ctx, creds.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	// Compare against an empty digest on a lookup miss so unknown users and
	// wrong passwords take the same path and the same failure.
	digest := ""
	if user != nil {
		digest = user.PasswordHash
	}
	if !password.Compare(creds.Password, digest) || user == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if user.HasValidToken(s.now()) {
		metrics.LoginsTotal.WithLabelValues("success").Inc()
		metrics.TokensTotal.WithLabelValues("reused").Inc()
		return user.Token, nil
	}

	signed, expiresAt, err := s.issuer.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateToken(ctx, user.ID, signed, expiresAt); err != nil {
		return "", err
	}

	s.log.Info().
		Str("username", user.Username).
		Time("expires_at", expiresAt).
		Msg("session token issued")

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensTotal.WithLabelValues("issued").Inc()
	return signed, nil
}

// Register creates a new account. The role defaults to "user" when left
// empty, the password is stored only as a bcrypt hash, and the session
// fields start out empty.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	// Pre-check for a friendlier error; the unique index on username is the
	// backstop against races.
	if _, err := s.users.FindByUsernameOrToken(ctx, in.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	digest, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: digest,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("username", created.Username).
		Str("role", created.Role).
		Msg("user registered")

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	return created, nil
}
