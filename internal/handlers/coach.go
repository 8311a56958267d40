package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
)

// CoachHandler serves the AI-drafted discovery questions and career
// narrative. Generation failures never reach the client; the service
// answers with its fixed fallback payload instead.
type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(coachService services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

func (ch *CoachHandler) GenerateQuestions(c *gin.Context) {
	var input services.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}
	RespondOK(c, ch.coachService.GenerateQuestions(c.Request.Context(), input))
}

func (ch *CoachHandler) GenerateNarrative(c *gin.Context) {
	var input services.NarrativeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}
	RespondOK(c, ch.coachService.GenerateNarrative(c.Request.Context(), input))
}
