package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tomyolivera/star-wars-api/internal/core/ports"
)

// AuthHandler handles login and registration.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	credentialsRequest
	Role string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login. Domain failures propagate to the
// central error handler, which keeps unknown-user and wrong-password
// responses identical.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tok, err := h.authService.Login(c.Request().Context(), ports.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: tok})
}

// Register handles POST /api/auth/register. The created user is returned
// without its password hash or session fields.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Credentials: ports.Credentials{
			Username: req.Username,
			Password: req.Password,
		},
		Role: req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}
