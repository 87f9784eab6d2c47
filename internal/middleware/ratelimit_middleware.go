package middleware

import (
	"net/http"
	"strconv"

	"chatbox-backend/internal/redis"
	"chatbox-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware throttles the credential endpoints per client IP.
// The chat proxy is deliberately not covered; its contract is a plain
// synchronous forward with no throttling.
func RateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isCredentialEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		result, err := limiter.AllowCredentialAttempt(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis being down must not take the login path down with it
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("Too Many Requests", "rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}

func isCredentialEndpoint(path string) bool {
	credentialPaths := []string{
		"/admin/login",
		"/user/signup",
	}
	for _, p := range credentialPaths {
		if path == p {
			return true
		}
	}
	return false
}
