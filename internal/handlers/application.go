package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (ah *ApplicationHandler) ListForUser(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}
	apps, err := ah.applicationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if apps == nil {
		apps = []types.ApplicationWithRole{}
	}
	RespondOK(c, apps)
}

type createApplicationRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	RoleID      uuid.UUID `json:"role_id" binding:"required"`
	Status      string    `json:"status" binding:"required"`
	ResumeURL   string    `json:"resume_url"`
	CoverLetter string    `json:"cover_letter"`
	Method      string    `json:"method"`
}

func (ah *ApplicationHandler) Create(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	app, err := ah.applicationService.Create(c.Request.Context(), &types.Application{
		UserID:      req.UserID,
		RoleID:      req.RoleID,
		Status:      req.Status,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		Method:      req.Method,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (ah *ApplicationHandler) Update(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var patch types.ApplicationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	app, err := ah.applicationService.Update(c.Request.Context(), id, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}
