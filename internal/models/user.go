// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a member of the Forkful community.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Image     string    `json:"image"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`

	// FollowerCount is not persisted; computed at query time
	FollowerCount int `gorm:"->;-:migration" json:"follower_count"`
	// IsFollowed indicates whether the current viewer follows this user (computed)
	IsFollowed bool `gorm:"->;-:migration" json:"is_followed"`
}
