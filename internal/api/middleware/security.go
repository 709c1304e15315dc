package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders hardens JSON and export responses. Anything answered to an
// authenticated caller, and every /auth response, is marked no-store so
// tokens and timetables do not land in shared caches.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Cross-Origin-Resource-Policy", "same-site")

		if c.GetHeader("Authorization") != "" || strings.HasPrefix(c.Request.URL.Path, "/auth/") {
			h.Set("Cache-Control", "no-store")
		}

		c.Next()
	}
}
