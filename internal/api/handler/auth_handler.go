package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/api/metrics"
	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// AuthHandler handles session lifecycle and profile requests.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required"`
}

type passwordResetConfirmRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type avatarRequest struct {
	AvatarURL string `json:"avatar_url" validate:"required"`
}

type authResponse struct {
	Token   string          `json:"token,omitempty"`
	User    *domain.User    `json:"user,omitempty"`
	Profile *domain.Profile `json:"profile,omitempty"`
}

type avatarCatalogResponse struct {
	Avatars []string `json:"avatars"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "email and a password of at least 6 characters are required"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return jsonError(c, err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token:   result.Token,
		User:    result.User,
		Profile: result.Profile,
	})
}

// Logout revokes the presented token for the remainder of its lifetime.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, _ := c.Get("token_id").(string)
	expiresAt, _ := c.Get("token_expires").(time.Time)
	if tokenID == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication claims"})
	}

	if err := h.authService.Logout(c.Request().Context(), tokenID, expiresAt); err != nil {
		return jsonError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RequestPasswordReset issues a password-reset token. The response is the
// same whether or not the account exists.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  passwordResetRequest  true  "Account email"
// @Success      202   "Accepted"
// @Failure      400   {object}  errorResponse
// @Router       /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return jsonError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// ResetPassword consumes a reset token and sets a new password.
//
// @Summary      Complete a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  passwordResetConfirmRequest  true  "Reset token and new password"
// @Success      204   "No Content"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/password-reset/confirm [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req passwordResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "a token and a password of at least 6 characters are required"})
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return jsonError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Profile returns the current user's profile.
//
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication claims"})
	}

	profile, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ChangeAvatar sets the current user's avatar to one of the catalog entries.
//
// @Summary      Change the current user's avatar
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      avatarRequest  true  "Catalog avatar URL"
// @Success      200   {object}  domain.Profile
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile/avatar [put]
func (h *AuthHandler) ChangeAvatar(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication claims"})
	}

	var req avatarRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	profile, err := h.authService.ChangeAvatar(c.Request().Context(), userID, req.AvatarURL)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Avatars returns the selectable avatar catalog.
//
// @Summary      List selectable avatars
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  avatarCatalogResponse
// @Router       /v1/avatars [get]
func (h *AuthHandler) Avatars(c echo.Context) error {
	return c.JSON(http.StatusOK, avatarCatalogResponse{Avatars: domain.Avatars})
}
