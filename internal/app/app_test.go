//go:build unit

package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/app"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/config"
)

const browserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) Safari/605.1.15"

func testConfig(t *testing.T) config.Config {
	t.Helper()
	var cfg config.Config
	cfg.Environment = "test"
	cfg.Version = "test"
	cfg.WelcomeDelay = time.Millisecond
	cfg.AllowedOrigins = []string{"http://localhost:8000"}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.DB.Dialect = "sqlite"
	cfg.DB.Source = filepath.Join(t.TempDir(), "app.db")
	cfg.Client.APIURL = "http://127.0.0.1:0"
	cfg.Client.Timeout = 1
	cfg.RateLimit.Requests = 3
	cfg.RateLimit.Window = time.Minute
	cfg.RateLimit.CleanupSpec = "@every 5m"
	cfg.RateLimit.GaugeSpec = "@every 1m"
	return cfg
}

func initApp(t *testing.T, cfg config.Config) (*app.App, app.ServiceContainer) {
	t.Helper()
	a := app.New(cfg, zerolog.Nop())
	c, err := a.Init(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { a.Stop(c) })
	return a, c
}

func postJSON(h http.Handler, path, body, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", browserAgent)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestInit_ServesPagesAndOps(t *testing.T) {
	_, c := initApp(t, testConfig(t))

	cases := []struct {
		path        string
		contentType string
	}{
		{"/", "text/html"},
		{"/cgu", "text/html"},
		{"/unsubscribe", "text/html"},
		{"/health", "application/json"},
		{"/api", "application/json"},
		{"/static/styles.css", "text/css"},
		{"/metrics", "text/plain"},
		{"/swagger/index.html", "text/html"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			c.Srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tc.contentType)
		})
	}
}

func TestInit_SubscribeFlow(t *testing.T) {
	_, c := initApp(t, testConfig(t))
	h := c.Srv.Handler

	w := postJSON(h, "/api/subscribe", `{"email":"Marie@Example.com"}`, "198.51.100.1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "marie@example.com", resp["email"])

	w = postJSON(h, "/api/subscribe", `{"email":"marie@example.com"}`, "198.51.100.2")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/subscribers/count", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_subscribers":1}`, w.Body.String())

	w = postJSON(h, "/api/unsubscribe", `{"email":"marie@example.com"}`, "198.51.100.3")
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(h, "/api/unsubscribe", `{"email":"marie@example.com"}`, "198.51.100.3")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInit_RateLimitsPerClient(t *testing.T) {
	_, c := initApp(t, testConfig(t))
	h := c.Srv.Handler

	for i := 0; i < 3; i++ {
		w := postJSON(h, "/api/subscribe", `{"email":"not-an-email"}`, "203.0.113.9")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := postJSON(h, "/api/subscribe", `{"email":"late@example.com"}`, "203.0.113.9")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = postJSON(h, "/api/subscribe", `{"email":"other@example.com"}`, "203.0.113.10")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInit_WithoutPersistence(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Source = ""
	_, c := initApp(t, cfg)

	assert.Nil(t, c.Db)
	assert.False(t, c.SubscriptionService.Persistent())

	for i := 0; i < 2; i++ {
		w := postJSON(c.Srv.Handler, "/api/subscribe", `{"email":"again@example.com"}`, "198.51.100.20")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestInit_UnreachableRedisFallsBackToMemory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Redis.Addr = "127.0.0.1:1"
	_, c := initApp(t, cfg)

	assert.Nil(t, c.Redis)
	assert.NotNil(t, c.Limiter)
}

func TestInit_RejectsNonJSONSubmissions(t *testing.T) {
	_, c := initApp(t, testConfig(t))

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader("email=a@example.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", browserAgent)
	w := httptest.NewRecorder()
	c.Srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"En-têtes de requête invalides."}`, w.Body.String())
}
