package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/repository"
)

const (
	claimsContextKey = "token_claims"
	userContextKey   = "current_user"
)

// Middleware returns the authentication chain: bearer token extraction and
// verification via the token service, then resolution of the token's user id
// to a persisted user. Any failure is a 401 with a generic detail.
func Middleware(tokens *TokenService, users repository.UserRepository) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Detail: "Could not validate credentials"})
		},
	})

	loadUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Detail: apperrors.ErrInvalidCredentials.Error()})
			}
			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Detail: apperrors.ErrInvalidCredentials.Error()})
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Detail: apperrors.ErrInvalidCredentials.Error()})
			}
			SetCurrentUser(c, user)
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{verify, loadUser}
}

// CurrentUser returns the authenticated user stored by Middleware, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(userContextKey, user)
}
