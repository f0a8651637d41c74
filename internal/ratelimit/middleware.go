package ratelimit

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
)

// Middleware rejects requests over the limit with 429 and a Retry-After header.
// Limiter failures let the request through.
func Middleware(
	l Limiter,
	key func(*http.Request) string,
	logger zerolog.Logger,
	m *metrics.Metrics,
) gin.HandlerFunc {
	logger = logger.With().Str("component", "RateLimiter").Logger()
	return func(c *gin.Context) {
		ip := key(c.Request)
		d, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.Error().Err(err).Str("client_ip", ip).Msg("rate limiter unavailable, request allowed")
			m.TechnicalErrors.WithLabelValues("rate_limiter_error", "warning").Inc()
			c.Next()
			return
		}
		if d.Allowed {
			c.Next()
			return
		}

		secs := int(math.Ceil(d.RetryAfter.Seconds()))
		if secs < 1 {
			secs = 1
		}
		logger.Warn().
			Str("client_ip", ip).
			Str("path", c.Request.URL.Path).
			Int("retry_after", secs).
			Msg("rate limit exceeded")
		m.RateLimited.WithLabelValues(c.FullPath()).Inc()

		c.Header("Retry-After", strconv.Itoa(secs))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"message": fmt.Sprintf("Trop de tentatives. Réessayez dans %d secondes.", secs),
		})
	}
}
