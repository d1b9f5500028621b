package public

import (
	"net/http"
	"time"

	"github.com/elverra/zenika-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

// Logo serves the platform logo.
func (h *Handler) Logo(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(logoSVG))
}

const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="60" viewBox="0 0 200 60">
<rect width="200" height="60" rx="8" fill="#1a3c8f"/>
<text x="100" y="38" font-family="Arial, sans-serif" font-size="22" font-weight="bold" fill="#ffffff" text-anchor="middle">ELVERRA</text>
</svg>`
