package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/platform/errs"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondError maps the service error taxonomy onto HTTP statuses:
// validation 400, missing parent 400, not-found 404, duplicate email
// 409, everything else 500.
func RespondError(c *gin.Context, err error) {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		respond(c, ae.Status, ae.Code, err)
	case errs.IsValidation(err):
		respond(c, http.StatusBadRequest, "validation_error", err)
	case errors.Is(err, errs.ErrReferentialIntegrity):
		respond(c, http.StatusBadRequest, "referential_integrity", err)
	case errors.Is(err, errs.ErrNotFound):
		respond(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, errs.ErrDuplicateEmail):
		respond(c, http.StatusConflict, "duplicate_email", err)
	default:
		respond(c, http.StatusInternalServerError, "internal", err)
	}
}

func respond(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// paramUUID parses a uuid path parameter, answering 400 itself when the
// value is malformed.
func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid_id", errs.Invalidf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}
