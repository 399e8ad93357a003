package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "itemstore/internal/errors"
	"itemstore/internal/service"
)

// AuthHandler handles the OAuth2-style token endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenResponse carries a newly minted access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RefreshTokenRequest carries the refresh token to exchange.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Token godoc
// @Summary OAuth2 password-form login
// @Description Accepts form fields username and password; username is the email.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "username and password are required"})
	}

	accessToken, err := h.authService.IssueAccessToken(c.Request().Context(), username, password)
	if err != nil {
		// The form endpoint reports the detail without a trailing period,
		// unlike /users/signin.
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Detail: "Invalid credentials"})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Description Only refresh-kind tokens are accepted; access tokens fail with 400.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}
