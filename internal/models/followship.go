package models

import (
	"time"
)

// Followship is a directed follower -> following relation between two users.
// The pair must be unique; self-follow is rejected at the service layer.
type Followship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_followship_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_followship_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// TableName specifies the table name for GORM
func (Followship) TableName() string {
	return "followships"
}
