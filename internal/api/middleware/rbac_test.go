package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

func invokeRBAC(policy Policy, role string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set("role", role)
	}

	h := RBAC(policy)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestRBAC_AllowsDeclaredRole(t *testing.T) {
	if err := invokeRBAC(RequireRoles(domain.RoleAdmin), domain.RoleAdmin); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestRBAC_ForbidsOtherRoles(t *testing.T) {
	err := invokeRBAC(RequireRoles(domain.RoleAdmin), domain.RoleUser)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", he.Code)
	}
}

func TestRBAC_ForbidsMissingRole(t *testing.T) {
	err := invokeRBAC(RequireRoles(domain.RoleAdmin), "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_AuthenticatedPolicyAllowsAnyRole(t *testing.T) {
	if err := invokeRBAC(Authenticated(), domain.RoleUser); err != nil {
		t.Fatalf("expected authenticated policy to allow any role, got %v", err)
	}
}

func TestRBAC_PublicSkips(t *testing.T) {
	if err := invokeRBAC(Public(), ""); err != nil {
		t.Fatalf("expected public route to pass, got %v", err)
	}
}
