package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ConfidenceHandler struct {
	confidenceService services.ConfidenceService
}

func NewConfidenceHandler(confidenceService services.ConfidenceService) *ConfidenceHandler {
	return &ConfidenceHandler{confidenceService: confidenceService}
}

type addConfidenceRequest struct {
	UserID          uuid.UUID `json:"user_id" binding:"required"`
	ConfidenceLevel *int      `json:"confidence_level" binding:"required"`
}

func (ch *ConfidenceHandler) Add(c *gin.Context) {
	var req addConfidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	entry, err := ch.confidenceService.Add(c.Request.Context(), req.UserID, *req.ConfidenceLevel)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ch *ConfidenceHandler) History(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}
	history, err := ch.confidenceService.History(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if history == nil {
		history = []types.ConfidenceEntry{}
	}
	RespondOK(c, history)
}
