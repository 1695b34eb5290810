package evidence

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// Handler handles HTTP requests for evidence operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new evidence handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers evidence routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/evidence", h.addEvidence)
	router.GET("/cases/:id/evidence", h.listEvidence)
}

// addEvidence handles POST /api/evidence
func (h *Handler) addEvidence(c *gin.Context) {
	var req CreateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": apierr.ValidationMessages(err),
		})
		return
	}

	id, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to add evidence")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// listEvidence handles GET /api/cases/:id/evidence
func (h *Handler) listEvidence(c *gin.Context) {
	limit := int64(DefaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.service.ListForCase(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.respondError(c, err, "Failed to list evidence")
		return
	}

	c.JSON(http.StatusOK, results)
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
