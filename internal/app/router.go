package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		RequestLog:  middleware.RequestLog,

		UserHandler:        handlers.User,
		ProgressHandler:    handlers.Progress,
		RoleHandler:        handlers.Role,
		ApplicationHandler: handlers.Application,
		ConfidenceHandler:  handlers.Confidence,
		WaitlistHandler:    handlers.Waitlist,
		CoachHandler:       handlers.Coach,
		WebhookHandler:     handlers.Webhook,
	})
}
