package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type WaitlistHandler struct {
	waitlistService services.WaitlistService
}

func NewWaitlistHandler(waitlistService services.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlistService: waitlistService}
}

type waitlistRequest struct {
	Email string `json:"email" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

func (wh *WaitlistHandler) Add(c *gin.Context) {
	var req waitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	entry, err := wh.waitlistService.Add(c.Request.Context(), req.Email, req.Type)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
