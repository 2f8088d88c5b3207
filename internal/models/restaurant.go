// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Restaurant represents a restaurant in the Forkful catalog.
type Restaurant struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Image       string   `json:"image"`
	ViewCounts  uint     `gorm:"not null;default:0" json:"view_counts"`
	CategoryID  uint     `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`

	Comments []Comment `gorm:"foreignKey:RestaurantID" json:"comments,omitempty"`

	// FavoritedCount is not persisted; computed at query time
	FavoritedCount int `gorm:"->;-:migration" json:"favorited_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
	// IsFavorited indicates whether the current viewer favorited this restaurant (computed)
	IsFavorited bool `gorm:"->;-:migration" json:"is_favorited"`
	// IsLiked indicates whether the current viewer liked this restaurant (computed)
	IsLiked bool `gorm:"->;-:migration" json:"is_liked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
