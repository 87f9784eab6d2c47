package middleware

import (
	"context"
	"net/http"
	"strings"

	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	"chatbox-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware verifies the bearer token and puts the decoded identity
// and role into the request context. No store lookup happens here; the
// token is self-verifying.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("Forbidden", "User not authorized"))
			c.Abort()
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("Forbidden", "User not authorized"))
			c.Abort()
			return
		}

		ctx := services.WithIdentityContext(c.Request.Context(), accountID, claims.Role)
		// expose the account to the logger's context enrichment as well
		ctx = context.WithValue(ctx, logger.AccountIdKey, accountID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole gates an operation on the role decoded by AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decoded, ok := services.RoleFromContext(c.Request.Context())
		if !ok || decoded != role {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("Forbidden", "User not authorized"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
