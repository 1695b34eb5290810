package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fraudwatch/case-manager/case-manager-backend/internal/config"
)

const (
	probeTimeout      = 5 * time.Second
	maxListedNames    = 10
	maxErrorDetailLen = 80
)

// Diagnostics is the /test response. Every field is a human-readable
// status string; probe failures are folded in here and never surface as
// an error response.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Handler serves the root banner and the store diagnostics endpoint
type Handler struct {
	db  *mongo.Database
	cfg config.DatabaseConfig
}

// NewHandler creates a new health handler. db may be nil when the store
// is not configured or unreachable.
func NewHandler(db *mongo.Database, cfg config.DatabaseConfig) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// RegisterRoutes registers the root and diagnostic routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.root)
	router.GET("/test", h.testDatabase)
}

// root handles GET /
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Investigation Case Manager API running"})
}

// testDatabase handles GET /test
func (h *Handler) testDatabase(c *gin.Context) {
	resp := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	resp.DatabaseURL = setStatus(h.cfg.URL != "")
	resp.DatabaseName = setStatus(h.cfg.Name != "")

	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Database = "available"
	resp.DatabaseName = h.db.Name()
	resp.ConnectionStatus = "connected"

	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		resp.Database = "connected but error: " + truncate(err.Error(), maxErrorDetailLen)
		c.JSON(http.StatusOK, resp)
		return
	}

	if len(names) > maxListedNames {
		names = names[:maxListedNames]
	}
	resp.Collections = names
	resp.Database = "connected and working"
	c.JSON(http.StatusOK, resp)
}

func setStatus(present bool) string {
	if present {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
