package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents the structure for error responses
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SecurityHeaders adds the response headers appropriate for a JSON API.
// Reference: https://gin-gonic.com/en/docs/examples/security-headers/
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		// Responses are data, never documents: nothing may be loaded or framed.
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Referrer-Policy", "no-referrer")
		// Post listings change on every write.
		c.Header("Cache-Control", "no-store")

		c.Next()
	}
}

// HostHeaderValidation rejects requests whose Host header does not name
// expectedHost. When expectedHost carries no port, any port is accepted.
// An empty expectedHost disables the check.
func HostHeaderValidation(expectedHost string, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedHost == "" || hostMatches(c.Request.Host, expectedHost) {
			c.Next()
			return
		}

		log.WithFields(logrus.Fields{
			"host":     c.Request.Host,
			"expected": expectedHost,
		}).Warn("Rejected request with unexpected Host header")
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid host header",
		})
	}
}

func hostMatches(host, expected string) bool {
	if strings.EqualFold(host, expected) {
		return true
	}
	if _, _, err := net.SplitHostPort(expected); err == nil {
		// Expected host pins a port; only an exact match will do.
		return false
	}
	hostname, _, err := net.SplitHostPort(host)
	if err != nil {
		return false
	}
	return strings.EqualFold(hostname, expected)
}
