package logger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ericjank/hyperf/pkg/middleware/logger"
)

func TestMiddleware_logs_one_access_line(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	mw := logger.NewMiddleware(zap.New(core)).Middleware()

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/7", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["httpMethod"])
	assert.Equal(t, "/users/7", fields["uri"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, int64(2), fields["responseSize"])
}

func TestNewMiddleware_nil_logger(t *testing.T) {
	t.Parallel()

	mw := logger.NewMiddleware(nil).Middleware()
	h := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	assert.NotPanics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
