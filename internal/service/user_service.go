package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user profile and admin listing operations.
type UserService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	List(ctx context.Context, current *model.User, skip, limit int) ([]model.User, error)
}

type userService struct {
	users             repository.UserRepository
	cache             Cache
	emptyListNotFound bool
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache Cache, emptyListNotFound bool) UserService {
	return &userService{users: users, cache: cache, emptyListNotFound: emptyListNotFound}
}

// Profile returns the user with items and their categories preloaded. The
// cached copy is dropped whenever the user's items change, so a hit is never
// older than the last item write.
func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByIDWithItems(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(userID), payload, userCacheTTL)
	}
	return user, nil
}

// List returns a page of users. Only active admins may call it.
func (s *userService) List(ctx context.Context, current *model.User, skip, limit int) ([]model.User, error) {
	if !current.IsActive || !current.IsAdmin() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	users, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 && s.emptyListNotFound {
		return nil, apperrors.ErrNoUsers
	}
	return users, nil
}
