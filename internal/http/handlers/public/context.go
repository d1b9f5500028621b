package public

import (
	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.CurrentUserID(c)
}

// optionalUserID reads the authenticated user without failing the
// request; guest flows pass nil.
func optionalUserID(c *gin.Context) *uint {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	if id, ok := value.(uint); ok {
		return &id
	}
	return nil
}
