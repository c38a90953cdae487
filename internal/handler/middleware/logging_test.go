//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"booking-registry/internal/handler/middleware"
	"booking-registry/internal/pkg/config"
	"booking-registry/tests/common/builder"
	"booking-registry/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	defaultBefore := slog.Default()

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	router.GET("/ping", func(c *gin.Context) {
		middleware.SetAccount(c, builder.Alice)
		c.Status(http.StatusNoContent)
	})
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	t.Run("logs start and completion with one request id", func(t *testing.T) {
		buf.Reset()
		httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var started, completed map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &started))
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &completed))

		assert.Equal(t, "Request started", started["msg"])
		assert.Equal(t, "Request completed", completed["msg"])
		assert.NotEmpty(t, started["request_id"])
		assert.Equal(t, started["request_id"], completed["request_id"])
		assert.Equal(t, "/ping", completed["path"])
		assert.Equal(t, builder.Alice.String(), completed["account"])
		assert.EqualValues(t, http.StatusNoContent, completed["status_code"])
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		buf.Reset()
		httptest.PerformRequest(t, router, http.MethodGet, "/missing", nil, "")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		var completed map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &completed))
		assert.Equal(t, "WARN", completed["level"])
		assert.Nil(t, completed["account"])
	})

	assert.Same(t, defaultBefore, slog.Default(), "middleware must not replace the default logger")
}
