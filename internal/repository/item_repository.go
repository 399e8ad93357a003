package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"itemstore/internal/model"
)

// ItemRepository defines item persistence operations. Single-owner reads are
// scoped by user id so ownership checks happen in the query itself.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByIDAndOwner(ctx context.Context, id uint, userID uuid.UUID) (*model.Item, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.Item, error)
	ListAll(ctx context.Context, skip, limit int) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item, categories []model.Category) error
	Delete(ctx context.Context, item *model.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts the item and its category associations in one transaction.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByIDAndOwner(ctx context.Context, id uint, userID uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("user_id = ?", userID).
		Offset(skip).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) ListAll(ctx context.Context, skip, limit int) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Offset(skip).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves the item's fields and replaces its category set. An empty
// category slice clears all associations.
func (r *itemRepository) Update(ctx context.Context, item *model.Item, categories []model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Update("name", item.Name).Error; err != nil {
			return err
		}
		if err := tx.Model(item).Association("Categories").Replace(categories); err != nil {
			return err
		}
		item.Categories = categories
		return nil
	})
}

// Delete removes the item and its category associations.
func (r *itemRepository) Delete(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
}
