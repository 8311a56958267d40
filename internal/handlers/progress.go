package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) Get(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}
	progress, err := ph.progressService.Get(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, progress)
}

func (ph *ProgressHandler) Update(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}

	var patch types.ProgressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	progress, err := ph.progressService.Update(c.Request.Context(), userID, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, progress)
}
