package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/repository"
)

const categoryCacheTTL = 5 * time.Minute

// CategoryService exposes category operations. Reads require an active user;
// mutations additionally require the admin role.
type CategoryService interface {
	Create(ctx context.Context, current *model.User, name string) (*model.Category, error)
	Get(ctx context.Context, current *model.User, id uint) (*model.Category, error)
	List(ctx context.Context, current *model.User, skip, limit int) ([]model.Category, error)
	Update(ctx context.Context, current *model.User, id uint, name string) (*model.Category, error)
	Delete(ctx context.Context, current *model.User, id uint) (uint, error)
}

type categoryService struct {
	categories        repository.CategoryRepository
	cache             Cache
	emptyListNotFound bool
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository, cache Cache, emptyListNotFound bool) CategoryService {
	return &categoryService{categories: categories, cache: cache, emptyListNotFound: emptyListNotFound}
}

// Create stores a new category. Admin only.
func (s *categoryService) Create(ctx context.Context, current *model.User, name string) (*model.Category, error) {
	if err := s.requireAdmin(current); err != nil {
		return nil, err
	}

	category := &model.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Get returns a category by id with read-through caching.
func (s *categoryService) Get(ctx context.Context, current *model.User, id uint) (*model.Category, error) {
	if !current.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	if data, _ := s.cache.Get(ctx, categoryCacheKey(id)); data != nil {
		var cached model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if payload, err := json.Marshal(category); err == nil {
		_ = s.cache.Set(ctx, categoryCacheKey(id), payload, categoryCacheTTL)
	}
	return category, nil
}

// List returns a page of categories.
func (s *categoryService) List(ctx context.Context, current *model.User, skip, limit int) ([]model.Category, error) {
	if !current.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	categories, err := s.categories.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 && s.emptyListNotFound {
		return nil, apperrors.ErrNoCategories
	}
	return categories, nil
}

// Update renames a category. Admin only.
func (s *categoryService) Update(ctx context.Context, current *model.User, id uint, name string) (*model.Category, error) {
	if err := s.requireAdmin(current); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryCacheKey(id))
	return category, nil
}

// Delete removes a category and its item associations. Admin only.
func (s *categoryService) Delete(ctx context.Context, current *model.User, id uint) (uint, error) {
	if err := s.requireAdmin(current); err != nil {
		return 0, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("find category: %w", err)
	}

	if err := s.categories.Delete(ctx, category); err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryCacheKey(id))
	return category.ID, nil
}

// requireAdmin enforces the active-then-admin check order used across all
// category mutations.
func (s *categoryService) requireAdmin(current *model.User) error {
	if !current.IsActive {
		return apperrors.ErrInactiveUser
	}
	if !current.IsAdmin() {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}
