package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Whatsapp string `json:"whatsapp"`
}

// Register creates the user and its initial progress record in one step.
func (uh *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, errs.Invalidf("invalid request body: %v", err))
		return
	}

	user, _, err := uh.userService.Register(c.Request.Context(), req.Email, req.Whatsapp)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetByEmail looks a user up by email address. The route wildcard is
// named userId to match the rest of the /users subtree, but its value
// here is the email.
func (uh *UserHandler) GetByEmail(c *gin.Context) {
	user, err := uh.userService.GetByEmail(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, user)
}
