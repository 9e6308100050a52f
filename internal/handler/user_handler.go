package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidchat/internal/auth"
	apperr "vidchat/internal/errors"
	"vidchat/internal/service"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UserInfoResponse is the public part of the logged-in user.
type UserInfoResponse struct {
	SuccessResponse
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}
	return success(c, http.StatusCreated, nil)
}

// FetchInfo godoc
// @Summary Return the logged-in user's username and email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserInfoResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /fetchInfo [get]
func (h *UserHandler) FetchInfo(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	return success(c, http.StatusOK, echo.Map{"username": user.Username, "email": user.Email})
}

// ChangePassword godoc
// @Summary Change the logged-in user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}
