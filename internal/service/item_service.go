package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/repository"
)

// ItemService exposes owner-scoped item operations. Reads and mutations other
// than listing are always restricted to the caller's own items; admins see
// every item when listing but get no ownership bypass on mutation.
type ItemService interface {
	Create(ctx context.Context, current *model.User, name string, categoryIDs []uint) (*model.Item, error)
	Get(ctx context.Context, current *model.User, id uint) (*model.Item, error)
	List(ctx context.Context, current *model.User, skip, limit int) ([]model.Item, error)
	Update(ctx context.Context, current *model.User, id uint, name string, categoryIDs []uint) (*model.Item, error)
	Delete(ctx context.Context, current *model.User, id uint) (uint, error)
}

type itemService struct {
	items             repository.ItemRepository
	categories        repository.CategoryRepository
	cache             Cache
	emptyListNotFound bool
}

// NewItemService creates a new item service.
func NewItemService(items repository.ItemRepository, categories repository.CategoryRepository, cache Cache, emptyListNotFound bool) ItemService {
	return &itemService{items: items, categories: categories, cache: cache, emptyListNotFound: emptyListNotFound}
}

// Create stores a new item owned by the current user. All referenced category
// ids must exist.
func (s *itemService) Create(ctx context.Context, current *model.User, name string, categoryIDs []uint) (*model.Item, error) {
	if !current.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	categories, err := s.resolveCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	item := &model.Item{
		UserID:     current.ID,
		Name:       name,
		Categories: categories,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(current.ID))
	return item, nil
}

// Get returns one of the caller's items. Items of other users are reported as
// not found.
func (s *itemService) Get(ctx context.Context, current *model.User, id uint) (*model.Item, error) {
	item, err := s.items.FindByIDAndOwner(ctx, id, current.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

// List returns a page of the caller's items, or of all items for admins.
func (s *itemService) List(ctx context.Context, current *model.User, skip, limit int) ([]model.Item, error) {
	if !current.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	var (
		items []model.Item
		err   error
	)
	if current.IsAdmin() {
		items, err = s.items.ListAll(ctx, skip, limit)
	} else {
		items, err = s.items.ListByOwner(ctx, current.ID, skip, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 && s.emptyListNotFound {
		return nil, apperrors.ErrNoItems
	}
	return items, nil
}

// Update replaces the item's name and category set. An empty category id list
// clears all associations.
func (s *itemService) Update(ctx context.Context, current *model.User, id uint, name string, categoryIDs []uint) (*model.Item, error) {
	if !current.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	categories, err := s.resolveCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByIDAndOwner(ctx, id, current.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	item.Name = name
	if err := s.items.Update(ctx, item, categories); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(current.ID))
	return item, nil
}

// Delete removes one of the caller's items and returns its id.
func (s *itemService) Delete(ctx context.Context, current *model.User, id uint) (uint, error) {
	if !current.IsActive {
		return 0, apperrors.ErrInactiveUser
	}

	item, err := s.items.FindByIDAndOwner(ctx, id, current.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrItemNotFound
		}
		return 0, fmt.Errorf("find item: %w", err)
	}

	if err := s.items.Delete(ctx, item); err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(current.ID))
	return item.ID, nil
}

func (s *itemService) resolveCategories(ctx context.Context, categoryIDs []uint) ([]model.Category, error) {
	if len(categoryIDs) == 0 {
		return []model.Category{}, nil
	}
	categories, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	if len(categories) != len(categoryIDs) {
		return nil, apperrors.ErrCategoriesNotFound
	}
	return categories, nil
}
