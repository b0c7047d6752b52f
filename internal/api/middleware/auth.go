package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
	"github.com/tomyolivera/star-wars-api/internal/pkg/token"
)

// TokenVerifier checks a presented bearer token's signature and expiry.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// SessionStore resolves the user holding a stored session token.
type SessionStore interface {
	FindByUsernameOrToken(ctx context.Context, value string) (*domain.User, error)
}

// Auth is the access guard. For non-public routes it extracts the bearer
// token, verifies signature and expiry, and cross-checks the token against
// the one stored on the user record — clearing or overwriting a stored
// token therefore revokes any previously issued token server-side, even
// while its signature would still verify. On success the decoded identity
// is stashed in the echo context for the role guard and handlers.
func Auth(policy Policy, verifier TokenVerifier, sessions SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if policy.IsPublic() {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			presented := parts[1]

			claims, err := verifier.Verify(presented)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A valid signature is not enough: the token must still be the
			// one stored on the user record, and that record's expiry must
			// not have passed.
			user, err := sessions.FindByUsernameOrToken(c.Request().Context(), presented)
			if err != nil || user.Token != presented || !user.HasValidToken(time.Now()) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
