package models

import (
	"time"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"unique;not null;size:80" json:"username"`
	PasswordHash    string    `gorm:"not null;size:255" json:"-"`
	APIKey          string    `gorm:"unique;index;size:36" json:"api_key"`
	BoardgamePoints int       `gorm:"not null;default:0" json:"boardgame_points"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Links           []Link    `gorm:"foreignKey:UserID" json:"links,omitempty"`
	Ratings         []Rating  `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
	Hidden          []Link    `gorm:"many2many:hidden_links" json:"-"`
}
