package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type staticHealth bool

func (h staticHealth) Healthy(context.Context) bool { return bool(h) }

func testConfig() *Config {
	return &Config{Port: "8080", CorsOrigins: []string{"*"}, BodyLimit: "1K"}
}

func TestServer_HealthChecks(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
	}{
		{name: "healthy", healthy: true, wantStatus: http.StatusOK},
		{name: "unhealthy", healthy: false, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testConfig(), staticHealth(tt.healthy)).SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	s := New(testConfig(), staticHealth(true)).SetupMetrics("/metrics", reg)

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_total 1")
}

func TestServer_MiddlewaresSetRequestID(t *testing.T) {
	s := New(testConfig(), staticHealth(true)).SetupMiddlewares().SetupErrorHandler()
	s.Echo.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestServer_BodyLimit(t *testing.T) {
	s := New(testConfig(), staticHealth(true)).SetupMiddlewares().SetupErrorHandler()
	s.Echo.POST("/bfhl", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	body := make([]byte, 2048)
	req := httptest.NewRequest(http.MethodPost, "/bfhl", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_ContextCancelledOnCancel(t *testing.T) {
	s := New(testConfig(), staticHealth(true))
	assert.NoError(t, s.Context().Err())
	s.cancel()
	assert.Error(t, s.Context().Err())
}

func TestServer_HealthProbesNotLogged(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	s := New(testConfig(), staticHealth(true)).
		SetupMiddlewares().
		SetupHealthChecks(HealthPath)
	s.Echo.GET("/bfhl", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	s.Echo.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, HealthPath, nil))
	assert.NotContains(t, logs.String(), "uri=/health")

	s.Echo.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bfhl", nil))
	assert.Contains(t, logs.String(), "uri=/bfhl")
}
