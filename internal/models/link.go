package models

import (
	"time"
)

type Link struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string    `gorm:"not null;size:100" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`

	Ratings []Rating `gorm:"foreignKey:LinkID" json:"ratings,omitempty"`
}
