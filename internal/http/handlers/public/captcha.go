package public

import (
	"github.com/elverra/zenika-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CaptchaImage issues a new image challenge.
func (h *Handler) CaptchaImage(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "captcha generation failed", err)
		return
	}
	response.Success(c, challenge)
}
