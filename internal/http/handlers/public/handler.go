package public

import "github.com/elverra/zenika-api/internal/provider"

// Handler serves the public and member-facing API.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
