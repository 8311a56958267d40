package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const (
	AutomationCareerAnalysis       = "career_analysis"
	AutomationQuestionFollowup     = "question_followup"
	AutomationNarrativeEnhancement = "narrative_enhancement"
)

// AutomationEvent is an inbound webhook payload from the workflow
// automation tool. Payload shape varies per type and is passed through.
type AutomationEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AutomationService handles inbound automation webhooks. The HTTP
// handler acknowledges immediately; Process runs afterwards and must
// never block a request.
type AutomationService interface {
	Process(ctx context.Context, event AutomationEvent)
}

type automationService struct {
	log        *logger.Logger
	forwardURL string
	httpClient *http.Client
}

// NewAutomationService forwards processed events to forwardURL when it
// is configured; an empty URL just logs and drops them.
func NewAutomationService(log *logger.Logger, forwardURL string) AutomationService {
	serviceLog := log.With("service", "AutomationService")
	return &automationService{
		log:        serviceLog,
		forwardURL: forwardURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (as *automationService) Process(ctx context.Context, event AutomationEvent) {
	switch event.Type {
	case AutomationCareerAnalysis, AutomationQuestionFollowup, AutomationNarrativeEnhancement:
		as.log.Info("Processing automation event", "type", event.Type)
	default:
		as.log.Warn("Unknown automation event type", "type", event.Type)
		return
	}

	if as.forwardURL == "" {
		return
	}
	if err := as.forward(ctx, event); err != nil {
		// Downstream failures stay local; the webhook was already acked.
		as.log.Warn("Automation forward failed", "type", event.Type, "error", err)
	}
}

func (as *automationService) forward(ctx context.Context, event AutomationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, as.forwardURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := as.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
