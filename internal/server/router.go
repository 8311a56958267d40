package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/handlers"
	"github.com/yungbote/careerpath-backend/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins []string

	RequestLog *middleware.RequestLogMiddleware

	UserHandler        *handlers.UserHandler
	ProgressHandler    *handlers.ProgressHandler
	RoleHandler        *handlers.RoleHandler
	ApplicationHandler *handlers.ApplicationHandler
	ConfidenceHandler  *handlers.ConfidenceHandler
	WaitlistHandler    *handlers.WaitlistHandler
	CoachHandler       *handlers.CoachHandler
	WebhookHandler     *handlers.WebhookHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLog != nil {
		router.Use(cfg.RequestLog.Handler())
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Users. The :userId wildcard is shared across the whole
		// /users subtree because gin requires a single param name per
		// path position; for the lookup route its value is the email.
		api.POST("/users", cfg.UserHandler.Register)
		api.GET("/users/:userId", cfg.UserHandler.GetByEmail)

		// Progress
		api.GET("/progress/:userId", cfg.ProgressHandler.Get)
		api.PATCH("/progress/:userId", cfg.ProgressHandler.Update)

		// Role catalog and per-user roles
		api.GET("/roles", cfg.RoleHandler.List)
		api.GET("/roles/:id", cfg.RoleHandler.Get)
		api.GET("/users/:userId/roles", cfg.RoleHandler.ListForUser)
		api.POST("/users/:userId/roles/:roleId", cfg.RoleHandler.Link)
		api.PATCH("/users/:userId/roles/:roleId", cfg.RoleHandler.UpdateLink)

		// Applications
		api.GET("/users/:userId/applications", cfg.ApplicationHandler.ListForUser)
		api.POST("/applications", cfg.ApplicationHandler.Create)
		api.PATCH("/applications/:id", cfg.ApplicationHandler.Update)

		// Confidence tracking
		api.POST("/confidence", cfg.ConfidenceHandler.Add)
		api.GET("/users/:userId/confidence", cfg.ConfidenceHandler.History)

		// Waitlist
		api.POST("/waitlist", cfg.WaitlistHandler.Add)

		// AI coaching
		api.POST("/ai/generate-questions", cfg.CoachHandler.GenerateQuestions)
		api.POST("/ai/generate-narrative", cfg.CoachHandler.GenerateNarrative)

		// Workflow automation
		api.POST("/automation/webhook", cfg.WebhookHandler.Receive)
	}

	return router
}
