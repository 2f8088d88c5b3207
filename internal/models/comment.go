// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a user's comment on a restaurant.
type Comment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Text         string     `gorm:"type:text;not null" json:"text"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	User         User       `gorm:"foreignKey:UserID" json:"user"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
