package admin

import "github.com/elverra/zenika-api/internal/provider"

// Handler serves the admin API.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
