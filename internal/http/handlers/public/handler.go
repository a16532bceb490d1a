package public

import "github.com/reborn-nursery/storefront/internal/provider"

// Handler serves the storefront and guest-facing API.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
