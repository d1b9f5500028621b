package admin

import (
	"errors"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.CurrentUserID(c)
}

// respondDecisionError maps the shared status-transition errors.
func respondDecisionError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrStatusConflict):
		respondError(c, response.CodeBadRequest, "resource is not pending", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, notFoundMsg, nil)
	case errors.Is(err, service.ErrInsufficientFunds):
		respondError(c, response.CodeBadRequest, "amount exceeds pending commissions", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid request", nil)
	default:
		respondError(c, response.CodeInternal, "operation failed", err)
	}
}
