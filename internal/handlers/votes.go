package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"boardrank/internal/services"

	"github.com/gin-gonic/gin"
)

type RateRequest struct {
	Value int `json:"value"`
}

// RateLink handles POST /api/links/:id/rate. The response carries the
// link's recomputed aggregate and the author's new point total.
func (h *Handler) RateLink(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.scoringService.SubmitVote(services.VoteDTO{
		RaterID:   mustUserID(c),
		LinkID:    uint(linkID),
		Value:     req.Value,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVote):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSelfVote):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to submit vote", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Rating updated",
		"new_rating": result.NewRating,
		"new_points": result.NewPoints,
	})
}

// HideLink handles POST /api/links/:id/hide. Hiding twice is a no-op.
func (h *Handler) HideLink(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	if err := h.boardService.Hide(mustUserID(c), uint(linkID), c.ClientIP()); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to hide link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hide link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link hidden"})
}
