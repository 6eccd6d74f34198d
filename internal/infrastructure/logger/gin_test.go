package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs a completed request with its request id", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)

		router := gin.New()
		router.Use(func(c *gin.Context) { c.Set("request_id", "req-9") })
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/stocks", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := serve(router, http.MethodGet, "/stocks?page=2")
		require.Equal(t, http.StatusOK, rec.Code)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

		fields := entries[0].ContextMap()
		assert.Equal(t, "req-9", fields["request_id"])
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/stocks", fields["path"])
		assert.Equal(t, "page=2", fields["query"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)

		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

		serve(router, http.MethodGet, "/missing")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("server errors log at error", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)

		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		serve(router, http.MethodGet, "/boom")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("stock ledger corrupted") })

	rec := serve(router, http.MethodGet, "/panic")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "stock ledger corrupted", entries[0].ContextMap()["error"])
}
