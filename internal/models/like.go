package models

import (
	"time"
)

// Like marks a restaurant as liked by a user.
// The combination of UserID and RestaurantID must be unique.
type Like struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_like_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_like_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`

	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}
