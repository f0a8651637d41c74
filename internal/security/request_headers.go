package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidHeaders = "En-têtes de requête invalides."
	minUserAgentLen   = 10
)

var suspiciousAgents = []string{
	"bot", "crawler", "spider", "scraper",
	"curl", "wget", "python-requests",
	"test", "scanner", "vulnerability",
}

// RequestHeaders rejects POST bodies that are not JSON and callers without a plausible
// User-Agent. Automated agents are only refused in production.
func RequestHeaders(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !validHeaders(c.Request, production) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msgInvalidHeaders})
			return
		}
		c.Next()
	}
}

func validHeaders(r *http.Request, production bool) bool {
	if r.Method == http.MethodPost &&
		!strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return false
	}

	ua := r.Header.Get("User-Agent")
	if len(ua) < minUserAgentLen {
		return false
	}

	if production {
		lower := strings.ToLower(ua)
		for _, pattern := range suspiciousAgents {
			if strings.Contains(lower, pattern) {
				return false
			}
		}
	}
	return true
}
