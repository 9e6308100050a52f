package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidchat/internal/auth"
	apperr "vidchat/internal/errors"
	"vidchat/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request. GET reads the same fields from the query string.
type LoginRequest struct {
	Username string `json:"username" query:"username" validate:"required"`
	Password string `json:"password" query:"password" validate:"required"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	SuccessResponse
	Token string `json:"token"`
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"token": token})
}

// ValidateToken godoc
// @Summary Check that the bearer token is valid
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /validateToken [get]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	return success(c, http.StatusOK, echo.Map{"expiresAt": session.ExpiresAt})
}
