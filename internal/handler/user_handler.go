package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"itemstore/internal/auth"
	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/service"
)

// UserHandler handles signup, signin and user profile endpoints.
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// SignupRequest is the payload for user registration.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// SignupResponse confirms a successful registration.
type SignupResponse struct {
	Detail string `json:"detail"`
}

// SigninRequest carries login credentials. Username, when present, is used as
// the email.
type SigninRequest struct {
	Email    string `json:"email" validate:"required_without=Username,omitempty,email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// SigninResponse carries the token pair issued on login.
type SigninResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// UserRead is the response shape for a user.
type UserRead struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	IsActive bool       `json:"is_active"`
	Role     string     `json:"role"`
	Items    []ItemRead `json:"items"`
}

func newUserRead(user *model.User) UserRead {
	items := make([]ItemRead, 0, len(user.Items))
	for i := range user.Items {
		items = append(items, newItemRead(&user.Items[i]))
	}
	return UserRead{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		IsActive: user.IsActive,
		Role:     user.Role,
		Items:    items,
	}
}

// Signup godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} SignupResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	if err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		if httpErr := apperrors.MapErrorToHTTP(err); httpErr.StatusCode != http.StatusInternalServerError {
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Detail: "Something went wrong."})
	}
	return c.JSON(http.StatusCreated, SignupResponse{Detail: "User created successfully."})
}

// Signin godoc
// @Summary Authenticate and receive an access and refresh token pair
// @Tags users
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} SigninResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /users/signin [post]
func (h *UserHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	email := req.Email
	if req.Username != "" {
		email = req.Username
	}

	accessToken, refreshToken, err := h.authService.Signin(c.Request().Context(), email, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SigninResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	})
}

// Me godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserRead
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	current := auth.CurrentUser(c)
	if current == nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Detail: apperrors.ErrInvalidCredentials.Error()})
	}

	user, err := h.userService.Profile(c.Request().Context(), current.ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newUserRead(user))
}

// List godoc
// @Summary List users with pagination (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} UserRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	users, err := h.userService.List(c.Request().Context(), auth.CurrentUser(c), skip, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]UserRead, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, UserRead{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Items: []ItemRead{}})
	}
	return c.JSON(http.StatusOK, out)
}
