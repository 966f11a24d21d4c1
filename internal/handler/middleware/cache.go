package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses carrying customer phone numbers as uncacheable.
// It is meant for route-level chains and does not call c.Next.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
