package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC is the role guard. It checks the role stashed by the access guard
// against the route policy's declared roles. Public routes and routes
// without declared roles pass through.
func RBAC(policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if policy.IsPublic() {
				return next(c)
			}

			role, _ := c.Get("role").(string)
			if !policy.Allows(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
