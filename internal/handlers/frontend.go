package handlers

import (
	"net/http"
	"strconv"

	"boardrank/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowHome(c *gin.Context) {
	sortMode := c.DefaultQuery("sort", "newest")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	viewerID := currentUserID(c)
	links, totalPages, err := h.boardService.Feed(viewerID, sortMode, page)
	if err != nil {
		h.logger.Error("Failed to load feed", "error", err)
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{
			"Error":      "Failed to load feed",
			"Sort":       sortMode,
			"Page":       page,
			"TotalPages": 0,
			"User":       viewerID,
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Links":      links,
		"Sort":       sortMode,
		"Page":       page,
		"TotalPages": totalPages,
		"User":       viewerID,
	})
}

func (h *Handler) ShowFavorites(c *gin.Context) {
	links, err := h.boardService.Favorites(mustUserID(c))
	if err != nil {
		h.logger.Error("Failed to load favorites", "error", err)
		c.HTML(http.StatusInternalServerError, "favorites.html", gin.H{"Error": "Failed to load favorites"})
		return
	}

	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"Links": links,
		"User":  currentUserID(c),
	})
}

func (h *Handler) ShowLeaderboard(c *gin.Context) {
	entries, err := h.scoringService.Leaderboard()
	if err != nil {
		h.logger.Error("Failed to load leaderboard", "error", err)
		c.HTML(http.StatusInternalServerError, "leaderboard.html", gin.H{"Error": "Failed to load leaderboard"})
		return
	}

	c.HTML(http.StatusOK, "leaderboard.html", gin.H{
		"Entries": entries,
		"User":    currentUserID(c),
	})
}

func (h *Handler) ShowProfile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": "User not found"})
		return
	}

	links, err := h.boardService.UserLinks(user.ID)
	if err != nil {
		h.logger.Error("Failed to load profile links", "error", err)
		c.HTML(http.StatusInternalServerError, "profile.html", gin.H{
			"Error":   "Failed to load profile",
			"Profile": user,
		})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Profile": user,
		"Links":   links,
		"User":    currentUserID(c),
	})
}

// GetFeed is the JSON variant of the home feed.
func (h *Handler) GetFeed(c *gin.Context) {
	sortMode := c.DefaultQuery("sort", "newest")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	links, totalPages, err := h.boardService.Feed(currentUserID(c), sortMode, page)
	if err != nil {
		h.logger.Error("Failed to load feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"links":       links,
		"page":        page,
		"total_pages": totalPages,
	})
}

func (h *Handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.scoringService.Leaderboard()
	if err != nil {
		h.logger.Error("Failed to load leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
