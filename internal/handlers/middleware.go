package handlers

import (
	"net/http"
	"strings"

	"boardrank/internal/models"
	"boardrank/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		user := session.Get("user_id")
		if user == nil {
			// Check for API Key if session is missing
			apiKey := c.GetHeader("X-API-Key")
			if apiKey != "" {
				var u models.User
				if err := h.db.Where("api_key = ?", apiKey).First(&u).Error; err == nil {
					c.Set("user_id", u.ID)
					c.Next()
					return
				}
			}

			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			} else {
				c.Redirect(http.StatusFound, "/login")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

// currentUserID resolves the acting user from the API-key context value
// or the session cookie. Nil means anonymous.
func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	session := sessions.Default(c)
	if v := session.Get("user_id"); v != nil {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// mustUserID is for handlers behind AuthRequired; the middleware
// guarantees one of the two sources is set.
func mustUserID(c *gin.Context) uint {
	if id := currentUserID(c); id != nil {
		return *id
	}
	return 0
}
