package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "itemstore/internal/errors"
)

func TestAuthHandler_Token(t *testing.T) {
	t.Run("valid form login", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("IssueAccessToken", mock.Anything, "ann@x.com", "secret123").Return("access", nil)
		h := NewAuthHandler(authService)

		form := url.Values{"username": {"ann@x.com"}, "password": {"secret123"}}
		e := echo.New()
		e.Validator = newTestValidator()
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("IssueAccessToken", mock.Anything, "ann@x.com", "wrongpass").Return("", apperrors.ErrInvalidCredentials)
		h := NewAuthHandler(authService)

		form := url.Values{"username": {"ann@x.com"}, "password": {"wrongpass"}}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid credentials", resp["detail"])
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("Refresh", mock.Anything, "refresh-token").Return("new-access", nil)
		h := NewAuthHandler(authService)

		c, rec := newTestContext(http.MethodPost, "/auth/refresh-token", `{"refresh_token":"refresh-token"}`)
		require.NoError(t, h.RefreshToken(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "new-access", resp.AccessToken)
	})

	t.Run("non-refresh token returns 400", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("Refresh", mock.Anything, "an-access-token").Return("", apperrors.ErrInvalidToken)
		h := NewAuthHandler(authService)

		c, rec := newTestContext(http.MethodPost, "/auth/refresh-token", `{"refresh_token":"an-access-token"}`)
		require.NoError(t, h.RefreshToken(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid Token", resp["detail"])
	})

	t.Run("missing refresh token returns 422", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService))

		c, rec := newTestContext(http.MethodPost, "/auth/refresh-token", `{}`)
		require.NoError(t, h.RefreshToken(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
