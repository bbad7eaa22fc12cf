package cmd

import (
	"log/slog"
	"os"
	"testing"

	"boardrank/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.User{}, &models.Link{}, &models.Rating{}, &models.AuditLog{})
	assert.NoError(t, err)
	return db
}

func TestSeedDemoData(t *testing.T) {
	db := setupSeedDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := seedDemoData(db, logger, 5)
	assert.NoError(t, err)

	var userCount, linkCount, ratingCount int64
	assert.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.NoError(t, db.Model(&models.Link{}).Count(&linkCount).Error)
	assert.NoError(t, db.Model(&models.Rating{}).Count(&ratingCount).Error)
	assert.Equal(t, int64(3), userCount)
	assert.Equal(t, int64(5), linkCount)
	assert.Equal(t, int64(10), ratingCount)

	t.Run("Points match the vote fixtures", func(t *testing.T) {
		expected := map[string]int{"alice": 1, "bob": 2, "carol": 1}
		for username, points := range expected {
			var user models.User
			assert.NoError(t, db.Where("username = ?", username).First(&user).Error)
			assert.Equal(t, points, user.BoardgamePoints, username)
		}
	})

	t.Run("Points match the rating aggregates", func(t *testing.T) {
		var users []models.User
		assert.NoError(t, db.Find(&users).Error)
		for _, user := range users {
			var sum int
			err := db.Model(&models.Rating{}).
				Select("COALESCE(SUM(ratings.value), 0)").
				Joins("JOIN links ON links.id = ratings.link_id").
				Where("links.user_id = ?", user.ID).
				Scan(&sum).Error
			assert.NoError(t, err)
			assert.Equal(t, sum, user.BoardgamePoints, user.Username)
		}
	})
}
