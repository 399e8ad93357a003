package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"itemstore/internal/auth"
	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = newTestValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAuthService)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "valid signup",
			body: `{"name":"Ann Lee","email":"ann@x.com","password":"secret123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "Ann Lee", "ann@x.com", "secret123").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedDetail: "User created successfully.",
		},
		{
			name: "duplicate email",
			body: `{"name":"Ann Lee","email":"ann@x.com","password":"secret123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Signup", mock.Anything, "Ann Lee", "ann@x.com", "secret123").Return(apperrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedDetail: "User with this email already exists.",
		},
		{
			name:           "short password fails validation",
			body:           `{"name":"Ann Lee","email":"ann@x.com","password":"short"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid email fails validation",
			body:           `{"name":"Ann Lee","email":"not-an-email","password":"secret123"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(MockAuthService)
			tt.setupMock(authService)
			h := NewUserHandler(authService, new(MockUserService))

			c, rec := newTestContext(http.MethodPost, "/users/signup", tt.body)
			require.NoError(t, h.Signup(c))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedDetail != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedDetail, resp["detail"])
			}
			authService.AssertExpectations(t)
		})
	}
}

func TestUserHandler_Signin(t *testing.T) {
	t.Run("valid credentials return token pair", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("Signin", mock.Anything, "ann@x.com", "secret123").Return("access", "refresh", nil)
		h := NewUserHandler(authService, new(MockUserService))

		c, rec := newTestContext(http.MethodPost, "/users/signin", `{"email":"ann@x.com","password":"secret123"}`)
		require.NoError(t, h.Signin(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp SigninResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, "refresh", resp.RefreshToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("username is used as email when provided", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("Signin", mock.Anything, "ann@x.com", "secret123").Return("access", "refresh", nil)
		h := NewUserHandler(authService, new(MockUserService))

		c, rec := newTestContext(http.MethodPost, "/users/signin", `{"username":"ann@x.com","password":"secret123"}`)
		require.NoError(t, h.Signin(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		authService.AssertExpectations(t)
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		authService := new(MockAuthService)
		authService.On("Signin", mock.Anything, "ann@x.com", "wrongpass").Return("", "", apperrors.ErrInvalidCredentials)
		h := NewUserHandler(authService, new(MockUserService))

		c, rec := newTestContext(http.MethodPost, "/users/signin", `{"email":"ann@x.com","password":"wrongpass"}`)
		require.NoError(t, h.Signin(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid credentials.", resp["detail"])
	})
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("returns current profile", func(t *testing.T) {
		userID := uuid.New()
		userService := new(MockUserService)
		userService.On("Profile", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Name:  "Ann Lee",
			Email: "ann@x.com",
			Role:  model.RoleUser,
		}, nil)
		h := NewUserHandler(new(MockAuthService), userService)

		c, rec := newTestContext(http.MethodGet, "/users/me", "")
		auth.SetCurrentUser(c, &model.User{ID: userID})
		require.NoError(t, h.Me(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp UserRead
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ann@x.com", resp.Email)
	})

	t.Run("missing user yields 401", func(t *testing.T) {
		h := NewUserHandler(new(MockAuthService), new(MockUserService))

		c, rec := newTestContext(http.MethodGet, "/users/me", "")
		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	t.Run("forwards pagination and maps users", func(t *testing.T) {
		admin := &model.User{ID: uuid.New(), IsActive: true, Role: model.RoleAdmin}
		userService := new(MockUserService)
		userService.On("List", mock.Anything, admin, 5, 2).Return([]model.User{
			{ID: uuid.New(), Name: "Ann Lee", Email: "ann@x.com", Role: model.RoleUser},
		}, nil)
		h := NewUserHandler(new(MockAuthService), userService)

		c, rec := newTestContext(http.MethodGet, "/users/?skip=5&limit=2", "")
		auth.SetCurrentUser(c, admin)
		require.NoError(t, h.List(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []UserRead
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "ann@x.com", resp[0].Email)
		userService.AssertExpectations(t)
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		user := &model.User{ID: uuid.New(), IsActive: true, Role: model.RoleUser}
		userService := new(MockUserService)
		userService.On("List", mock.Anything, user, 0, 10).Return(nil, apperrors.ErrInsufficientPermissions)
		h := NewUserHandler(new(MockAuthService), userService)

		c, rec := newTestContext(http.MethodGet, "/users/", "")
		auth.SetCurrentUser(c, user)
		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("negative skip is a validation error", func(t *testing.T) {
		h := NewUserHandler(new(MockAuthService), new(MockUserService))

		c, rec := newTestContext(http.MethodGet, "/users/?skip=-1", "")
		auth.SetCurrentUser(c, &model.User{IsActive: true, Role: model.RoleAdmin})
		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("zero limit is a validation error", func(t *testing.T) {
		h := NewUserHandler(new(MockAuthService), new(MockUserService))

		c, rec := newTestContext(http.MethodGet, "/users/?limit=0", "")
		auth.SetCurrentUser(c, &model.User{IsActive: true, Role: model.RoleAdmin})
		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
