package handlers

import (
	"log/slog"
	"os"
	"testing"

	"boardrank/internal/config"
	"boardrank/internal/models"
	"boardrank/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.Link{}, &models.Rating{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
		PageSize:      5,
	}

	audit := services.NewAuditService(db, logger)
	scoring := services.NewScoringService(db, audit)
	board := services.NewBoardService(db, audit, cfg.PageSize)

	h := NewHandler(cfg, logger, db, scoring, board, audit)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "../../web/templates/*", "../../web/static")
}

func createHandlerUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		PasswordHash: "x",
		APIKey:       username + "-key",
	}
	assert.NoError(t, db.Create(&user).Error)
	return &user
}

func createHandlerLink(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Link {
	t.Helper()
	link := models.Link{UserID: authorID, Title: title, Description: "a game"}
	assert.NoError(t, db.Create(&link).Error)
	return &link
}
