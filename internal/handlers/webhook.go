package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type WebhookHandler struct {
	log               *logger.Logger
	automationService services.AutomationService
}

func NewWebhookHandler(log *logger.Logger, automationService services.AutomationService) *WebhookHandler {
	return &WebhookHandler{log: log.With("handler", "WebhookHandler"), automationService: automationService}
}

// Receive acknowledges the inbound automation webhook immediately and
// processes it off the request goroutine, so slow downstreams can never
// stall the caller.
func (wh *WebhookHandler) Receive(c *gin.Context) {
	var event services.AutomationEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		RespondError(c, errs.Invalidf("invalid webhook body: %v", err))
		return
	}
	if event.Type == "" {
		RespondError(c, apierr.New(http.StatusBadRequest, "missing_type", errors.New("webhook type required")))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		wh.automationService.Process(ctx, event)
	}()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Webhook accepted"})
}
