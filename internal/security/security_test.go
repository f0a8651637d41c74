//go:build unit

package security_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/security"
)

func TestClientIP(t *testing.T) {
	cases := []struct {
		name   string
		xff    string
		realIP string
		remote string
		wantIP string
	}{
		{name: "peer only", remote: "203.0.113.7:5123", wantIP: "203.0.113.7"},
		{name: "forwarded first valid", xff: "garbage, 198.51.100.2, 10.0.0.1", remote: "10.0.0.9:80", wantIP: "198.51.100.2"},
		{name: "forwarded invalid falls to real ip", xff: "unknown", realIP: "192.0.2.44", remote: "10.0.0.9:80", wantIP: "192.0.2.44"},
		{name: "real ip", realIP: " 192.0.2.45 ", remote: "10.0.0.9:80", wantIP: "192.0.2.45"},
		{name: "ipv6 peer", remote: "[2001:db8::1]:443", wantIP: "2001:db8::1"},
		{name: "peer without port", remote: "pipe", wantIP: "pipe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remote
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.realIP != "" {
				r.Header.Set("X-Real-IP", tc.realIP)
			}
			assert.Equal(t, tc.wantIP, security.ClientIP(r))
		})
	}
}

func TestHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, production := range []bool{false, true} {
		r := gin.New()
		r.Use(security.Headers(production))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
		assert.Equal(t, production, w.Header().Get("Strict-Transport-Security") != "")
	}
}

func TestRequestHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const browser = "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"

	cases := []struct {
		name        string
		method      string
		contentType string
		userAgent   string
		production  bool
		wantCode    int
	}{
		{name: "json post", method: http.MethodPost, contentType: "application/json", userAgent: browser,
			wantCode: http.StatusOK},
		{name: "json with charset", method: http.MethodPost, contentType: "application/json; charset=utf-8",
			userAgent: browser, wantCode: http.StatusOK},
		{name: "form post", method: http.MethodPost, contentType: "application/x-www-form-urlencoded",
			userAgent: browser, wantCode: http.StatusBadRequest},
		{name: "no content type", method: http.MethodPost, userAgent: browser, wantCode: http.StatusBadRequest},
		{name: "no user agent", method: http.MethodPost, contentType: "application/json",
			wantCode: http.StatusBadRequest},
		{name: "short user agent", method: http.MethodPost, contentType: "application/json", userAgent: "Mozilla",
			wantCode: http.StatusBadRequest},
		{name: "curl allowed in development", method: http.MethodPost, contentType: "application/json",
			userAgent: "curl/8.5.0 (x86_64)", wantCode: http.StatusOK},
		{name: "curl refused in production", method: http.MethodPost, contentType: "application/json",
			userAgent: "curl/8.5.0 (x86_64)", production: true, wantCode: http.StatusBadRequest},
		{name: "crawler refused in production", method: http.MethodPost, contentType: "application/json",
			userAgent: "Googlebot/2.1 (+http://www.google.com/bot.html)", production: true,
			wantCode: http.StatusBadRequest},
		{name: "browser in production", method: http.MethodPost, contentType: "application/json",
			userAgent: browser, production: true, wantCode: http.StatusOK},
		{name: "get skips content type", method: http.MethodGet, userAgent: browser, wantCode: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(security.RequestHeaders(tc.production))
			r.Any("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tc.method, "/", strings.NewReader(`{}`))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			if tc.userAgent != "" {
				req.Header.Set("User-Agent", tc.userAgent)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusBadRequest {
				assert.JSONEq(t, `{"message":"En-têtes de requête invalides."}`, w.Body.String())
			}
		})
	}
}
