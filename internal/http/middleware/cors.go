package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}
	corsAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
)

// CORSConfig allows any origin with the CMS headers and methods.
func CORSConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     corsAllowMethods,
		AllowHeaders:     corsAllowHeaders,
		ExposeHeaders:    []string{"Content-Length", "ETag"},
		AllowCredentials: false,
	}
}

// CORS handles browser requests (those carrying an Origin header).
func CORS() gin.HandlerFunc {
	return cors.New(CORSConfig())
}

// StaticCORS attaches the permissive CORS headers to requests without an Origin header,
// which gin-contrib/cors skips, and answers every OPTIONS request with 204.
func StaticCORS() gin.HandlerFunc {
	allowHeaders := strings.Join(corsAllowHeaders, ", ")
	allowMethods := strings.Join(corsAllowMethods, ", ")

	return func(c *gin.Context) {
		if c.GetHeader("Origin") == "" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Headers", allowHeaders)
			c.Header("Access-Control-Allow-Methods", allowMethods)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
