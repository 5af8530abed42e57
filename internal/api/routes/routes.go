package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oubasys/portfolio/internal/api/handlers"
	"github.com/oubasys/portfolio/internal/api/middleware"
	"github.com/oubasys/portfolio/internal/services"
)

type Deps struct {
	Log       *logrus.Logger
	JWTSecret string
	Auth      services.AuthService

	AuthH      *handlers.AuthHandler
	Profile    *handlers.ProfileHandler
	Skills     *handlers.SkillHandler
	Experience *handlers.ExperienceHandler
	Projects   *handlers.ProjectHandler
	Reviews    *handlers.ReviewHandler
	Knowledge  *handlers.KnowledgeHandler
	Settings   *handlers.SettingsHandler
	Chat       *handlers.ChatHandler
	AISessions *handlers.AISessionHandler
}

// RegisterRoutes mounts the whole API surface under /api. Public routes feed
// the portfolio pages and the chat widget; everything else requires an admin
// bearer token.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestLogger(d.Log))

	api := r.Group("/api")

	// Health-ish
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public
	api.POST("/login", d.AuthH.Login)
	api.POST("/register", d.AuthH.Register)

	api.GET("/profile", d.Profile.Get)
	api.GET("/skills", d.Skills.List)
	api.GET("/experiences", d.Experience.List)
	api.GET("/projects", d.Projects.List)
	api.GET("/reviews", d.Reviews.ListPublished)
	api.POST("/reviews", d.Reviews.Create)

	api.POST("/chat", d.Chat.Send)

	// Protected routes (JWT + admin role)
	auth := api.Group("/")
	auth.Use(middleware.JWTAuth(d.JWTSecret, d.Auth), middleware.RequireAdmin())

	auth.POST("/logout", d.AuthH.Logout)
	auth.GET("/user", d.AuthH.CurrentUser)

	auth.POST("/profile", d.Profile.Save)

	auth.POST("/skills", d.Skills.Create)
	auth.DELETE("/skills/:id", d.Skills.Delete)

	auth.POST("/experiences", d.Experience.Create)
	auth.PUT("/experiences/:id", d.Experience.Update)
	auth.DELETE("/experiences/:id", d.Experience.Delete)

	auth.POST("/projects", d.Projects.Create)
	auth.PUT("/projects/:id", d.Projects.Update)
	auth.DELETE("/projects/:id", d.Projects.Delete)

	auth.GET("/admin/reviews", d.Reviews.ListAll)
	auth.PATCH("/avis/:id/publish", d.Reviews.TogglePublish)
	auth.DELETE("/reviews/:id", d.Reviews.Delete)

	auth.GET("/assistant-knowledge", d.Knowledge.List)
	auth.POST("/assistant-knowledge", d.Knowledge.Create)
	auth.PUT("/assistant-knowledge/:id", d.Knowledge.Update)
	auth.DELETE("/assistant-knowledge/:id", d.Knowledge.Delete)

	auth.GET("/assistant-settings", d.Settings.GetAll)
	auth.PUT("/assistant-settings/:key", d.Settings.Set)

	auth.GET("/ai-sessions", d.AISessions.List)
	auth.GET("/ai-sessions/:id", d.AISessions.Get)
	auth.DELETE("/ai-sessions/:id", d.AISessions.Delete)
}
