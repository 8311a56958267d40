package app

import (
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/platform/openai"
	"github.com/yungbote/careerpath-backend/internal/services"
	"github.com/yungbote/careerpath-backend/internal/storage"
)

type Services struct {
	User        services.UserService
	Progress    services.ProgressService
	Role        services.RoleService
	Application services.ApplicationService
	Confidence  services.ConfidenceService
	Waitlist    services.WaitlistService
	Coach       services.CoachService
	Automation  services.AutomationService
}

func wireServices(store storage.Store, log *logger.Logger, cfg Config) Services {
	log.Info("Wiring services...")

	// Without an API key the coach service serves its static fallback
	// content, so a missing key is not fatal.
	var aiClient openai.Client
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(log)
		if err != nil {
			log.Warn("Could not init OpenAI client, coaching falls back to static content", "error", err)
		} else {
			aiClient = client
		}
	} else {
		log.Info("OPENAI_API_KEY not set, coaching serves static fallback content")
	}

	return Services{
		User:        services.NewUserService(store, log),
		Progress:    services.NewProgressService(store, log),
		Role:        services.NewRoleService(store, log),
		Application: services.NewApplicationService(store, log),
		Confidence:  services.NewConfidenceService(store, log),
		Waitlist:    services.NewWaitlistService(store, log),
		Coach:       services.NewCoachService(aiClient, log),
		Automation:  services.NewAutomationService(log, cfg.AutomationForwardURL),
	}
}
