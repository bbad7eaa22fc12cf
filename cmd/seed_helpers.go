package cmd

import (
	"fmt"

	"boardrank/internal/models"
	"boardrank/pkg/utils"

	"gorm.io/gorm"
)

func registerSeedUser(db *gorm.DB, username, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for %s: %w", username, err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		APIKey:       utils.GenerateAPIKey(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", username, err)
	}
	return &user, nil
}
