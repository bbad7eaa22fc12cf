package models

import (
	"time"
)

// Rating is a user's current vote on a link, +1 or -1. The composite
// unique index keeps it to one row per (user, link) pair.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_link" json:"user_id"`
	LinkID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_link" json:"link_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 for upvote, -1 for downvote
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
