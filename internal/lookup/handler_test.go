package lookup

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicLookupAlwaysReturnsPlaceholder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api"))

	for _, username := range []string{"scammer123", "nobody-with-a-case", "a"} {
		req := httptest.NewRequest(http.MethodGet, "/api/lookup/"+username, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, username, resp["username"])
		assert.Equal(t, true, resp["is_private"])
		assert.Nil(t, resp["full_name"])
		assert.Nil(t, resp["bio"])
		assert.Nil(t, resp["external_url"])
	}
}
