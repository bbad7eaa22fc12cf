package handlers

import (
	"html/template"
	"time"

	"boardrank/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-Key"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("boardrank_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowHome)
	r.GET("/leaderboard", h.ShowLeaderboard)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.HandleLoginForm)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.HandleRegisterForm)
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)
	r.POST("/logout", h.LogoutUser)
	r.GET("/api/feed", h.GetFeed)
	r.GET("/api/leaderboard", h.GetLeaderboard)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/submit", h.ShowSubmit)
		authorized.POST("/submit", h.HandleSubmitForm)
		authorized.GET("/edit/:id", h.ShowEdit)
		authorized.POST("/edit/:id", h.HandleEditForm)
		authorized.POST("/delete/:id", h.HandleDelete)
		authorized.GET("/favorites", h.ShowFavorites)
		authorized.GET("/profile/:username", h.ShowProfile)
		authorized.POST("/api/links/:id/rate", h.RateLink)
		authorized.POST("/api/links/:id/hide", h.HideLink)
		authorized.POST("/api/auth/apikey", h.GenerateNewAPIKey)
	}

	return r
}
