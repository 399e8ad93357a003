package model

import (
	"time"

	"github.com/google/uuid"
)

// Item belongs to exactly one user and may be tagged with any number of
// categories through the category_item_associations join table.
type Item struct {
	ID     uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Name   string    `json:"name" gorm:"size:255;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Categories []Category `json:"categories" gorm:"many2many:category_item_associations"`
	User       *User      `json:"-" gorm:"foreignKey:UserID"`
}
