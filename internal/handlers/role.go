package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type RoleHandler struct {
	roleService services.RoleService
}

func NewRoleHandler(roleService services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (rh *RoleHandler) List(c *gin.Context) {
	roles, err := rh.roleService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, roles)
}

func (rh *RoleHandler) Get(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	role, err := rh.roleService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, role)
}

func (rh *RoleHandler) ListForUser(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}
	userRoles, err := rh.roleService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if userRoles == nil {
		userRoles = []types.UserRoleWithRole{}
	}
	RespondOK(c, userRoles)
}

type linkRoleRequest struct {
	IsShortlisted bool `json:"is_shortlisted"`
}

func (rh *RoleHandler) Link(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}
	roleID, ok := paramUUID(c, "roleId")
	if !ok {
		return
	}

	// Body is optional; linking without one leaves the shortlist flag off.
	var req linkRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	userRole, err := rh.roleService.Link(c.Request.Context(), userID, roleID, req.IsShortlisted)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, userRole)
}

func (rh *RoleHandler) UpdateLink(c *gin.Context) {
	userID, ok := paramUUID(c, "userId")
	if !ok {
		return
	}
	roleID, ok := paramUUID(c, "roleId")
	if !ok {
		return
	}

	var patch types.UserRolePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	userRole, err := rh.roleService.UpdateLink(c.Request.Context(), userID, roleID, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, userRole)
}
