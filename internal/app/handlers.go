package app

import (
	"github.com/yungbote/careerpath-backend/internal/handlers"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Handlers struct {
	User        *handlers.UserHandler
	Progress    *handlers.ProgressHandler
	Role        *handlers.RoleHandler
	Application *handlers.ApplicationHandler
	Confidence  *handlers.ConfidenceHandler
	Waitlist    *handlers.WaitlistHandler
	Coach       *handlers.CoachHandler
	Webhook     *handlers.WebhookHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:        handlers.NewUserHandler(services.User),
		Progress:    handlers.NewProgressHandler(services.Progress),
		Role:        handlers.NewRoleHandler(services.Role),
		Application: handlers.NewApplicationHandler(services.Application),
		Confidence:  handlers.NewConfidenceHandler(services.Confidence),
		Waitlist:    handlers.NewWaitlistHandler(services.Waitlist),
		Coach:       handlers.NewCoachHandler(services.Coach),
		Webhook:     handlers.NewWebhookHandler(log, services.Automation),
	}
}
