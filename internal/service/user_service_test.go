package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
)

func TestUserService_Profile(t *testing.T) {
	t.Run("returns user with items", func(t *testing.T) {
		userID := uuid.New()
		users := new(MockUserRepository)
		users.On("FindByIDWithItems", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "ann@x.com",
			Items: []model.Item{{ID: 1, Name: "widget"}},
		}, nil)

		svc := NewUserService(users, noCache, true)
		user, err := svc.Profile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", user.Email)
		assert.Len(t, user.Items, 1)
	})

	t.Run("missing user reports invalid credentials", func(t *testing.T) {
		userID := uuid.New()
		users := new(MockUserRepository)
		users.On("FindByIDWithItems", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(users, noCache, true)
		_, err := svc.Profile(context.Background(), userID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUserService_List(t *testing.T) {
	t.Run("active admin lists users", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("List", mock.Anything, 0, 10).Return([]model.User{{Email: "ann@x.com"}}, nil)

		svc := NewUserService(users, noCache, true)
		got, err := svc.List(context.Background(), activeAdmin(), 0, 10)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("non-admin is rejected regardless of payload", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), noCache, true)
		_, err := svc.List(context.Background(), activeUser(), 0, 10)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})

	t.Run("inactive admin is rejected", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), noCache, true)
		_, err := svc.List(context.Background(), &model.User{IsActive: false, Role: model.RoleAdmin}, 0, 10)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})

	t.Run("empty result is not found when configured", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("List", mock.Anything, 0, 10).Return([]model.User{}, nil)

		svc := NewUserService(users, noCache, true)
		_, err := svc.List(context.Background(), activeAdmin(), 0, 10)
		assert.ErrorIs(t, err, apperrors.ErrNoUsers)
	})

	t.Run("empty result is an empty list when configured off", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("List", mock.Anything, 0, 10).Return([]model.User{}, nil)

		svc := NewUserService(users, noCache, false)
		got, err := svc.List(context.Background(), activeAdmin(), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
