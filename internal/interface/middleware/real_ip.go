package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP resolves the originating client address and stores it in the
// request context under "real_ip" for downstream middleware such as the
// rate limiter. Proxy headers are trusted in order: X-Real-IP, then the
// left-most X-Forwarded-For entry, then Gin's own ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	if ip := parseAddr(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := parseAddr(first); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

// parseAddr returns the canonical form of a candidate IP, or "" when the
// value is empty or not a valid address.
func parseAddr(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
