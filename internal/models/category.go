package models

import (
	"time"
)

// Category groups restaurants by cuisine or theme.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Restaurants []Restaurant `gorm:"foreignKey:CategoryID" json:"restaurants,omitempty"`
}
