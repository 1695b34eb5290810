package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PublicProfileResponse is the fixed shape returned by the public lookup
// endpoint. Optional fields stay null until an approved external data
// source is integrated.
type PublicProfileResponse struct {
	Username    string  `json:"username"`
	FullName    *string `json:"full_name"`
	Bio         *string `json:"bio"`
	ExternalURL *string `json:"external_url"`
	IsPrivate   bool    `json:"is_private"`
}

// Handler serves the public profile lookup stub
type Handler struct{}

// NewHandler creates a new lookup handler
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers lookup routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/lookup/:username", h.publicLookup)
}

// publicLookup handles GET /api/lookup/:username. It performs no real
// lookup and never touches case data: it is an integration point for a
// future approved metadata source and always returns the placeholder.
func (h *Handler) publicLookup(c *gin.Context) {
	c.JSON(http.StatusOK, PublicProfileResponse{
		Username:  c.Param("username"),
		IsPrivate: true,
	})
}
