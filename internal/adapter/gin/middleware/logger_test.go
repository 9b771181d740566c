package middleware

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

func TestLoggerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(Logger(log), Recovery(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	panics := logs.FilterMessage("panic recovered in handler").All()
	require.Len(t, panics, 1)

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 2)
	assert.Equal(t, zapcore.InfoLevel, completed[0].Level)
	assert.EqualValues(t, http.StatusOK, completed[0].ContextMap()["status"])
	assert.Equal(t, zapcore.ErrorLevel, completed[1].Level)
}
