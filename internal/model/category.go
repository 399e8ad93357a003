package model

import "time"

// Category is an admin-managed tag. Names are unique and non-empty.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:36;uniqueIndex;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Items []Item `json:"items,omitempty" gorm:"many2many:category_item_associations"`
}
