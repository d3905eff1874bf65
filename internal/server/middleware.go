package server

import (
	"net/http"
	"time"

	"auction-house/services/auction/handler"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequiredMiddleware resolves the session token from the Authorization
// header on every request. Missing, never-issued and expired tokens all get
// the same response.
func AuthRequiredMiddleware(authService handler.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			utils.JSONResponse(c, http.StatusUnauthorized, nil, "invalid or expired session")
			c.Abort()
			return
		}

		username, err := authService.Authenticate(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(handler.ContextUserKey, username)
		c.Next()
	}
}
