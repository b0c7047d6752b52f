package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
	"github.com/tomyolivera/star-wars-api/internal/pkg/token"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid user credentials"},
		{"unknown user renders as invalid credentials", domain.ErrUserNotFound, http.StatusBadRequest, "invalid user credentials"},
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"movie not found", domain.ErrMovieNotFound, http.StatusNotFound, "movie not found"},
		{"invalid token", token.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"expired token", token.ErrTokenExpired, http.StatusUnauthorized, "invalid token"},
		{"wrapped domain error", fmt.Errorf("login: %w", domain.ErrInvalidCredentials), http.StatusBadRequest, "invalid user credentials"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := renderError(t, tc.err)
			if code != tc.code {
				t.Errorf("status = %d, want %d", code, tc.code)
			}
			if resp.Error != tc.message {
				t.Errorf("message = %q, want %q", resp.Error, tc.message)
			}
		})
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusForbidden, "forbidden"))
	if code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", code)
	}
	if resp.Error != "forbidden" {
		t.Errorf("message = %q, want forbidden", resp.Error)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, resp := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", code)
	}
	if resp.Error != "internal server error" {
		t.Errorf("unexpected error must not leak cause, got %q", resp.Error)
	}
}
