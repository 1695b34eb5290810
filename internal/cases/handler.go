package cases

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// Handler handles HTTP requests for case operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new cases handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers case routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/cases", h.createCase)
	router.GET("/cases", h.listCases)
	router.GET("/cases/:id", h.getCase)
	router.PATCH("/cases/:id", h.updateCase)
}

// createCase handles POST /api/cases
func (h *Handler) createCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": apierr.ValidationMessages(err),
		})
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create case")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// listCases handles GET /api/cases
func (h *Handler) listCases(c *gin.Context) {
	filter := ListFilter{
		Username: c.Query("username"),
		Status:   c.Query("status"),
		Limit:    queryLimit(c, DefaultListLimit),
	}

	results, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "Failed to list cases")
		return
	}

	c.JSON(http.StatusOK, results)
}

// getCase handles GET /api/cases/:id
func (h *Handler) getCase(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to get case")
		return
	}

	c.JSON(http.StatusOK, result)
}

// updateCase handles PATCH /api/cases/:id
func (h *Handler) updateCase(c *gin.Context) {
	var req UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": apierr.ValidationMessages(err),
		})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update case")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, apierr.ErrNotFound), errors.Is(err, apierr.ErrInvalidID):
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
	case errors.Is(err, apierr.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
	default:
		h.logger.Error(msg, zap.Error(err), zap.String("request_id", c.GetString("request_id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// queryLimit parses the limit query parameter, falling back to the given
// default when absent or unusable.
func queryLimit(c *gin.Context, fallback int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
