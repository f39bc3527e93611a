package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"laptop-service-center/types"
)

// Claims represents the JWT claims (using shared types)
type Claims = types.Claims

// TokenVerifier validates an admin session token
type TokenVerifier interface {
	Verify(token string) (*types.Claims, error)
}

// AdminAuthMiddleware guards admin routes with a bearer token. Websocket
// clients may pass the token as ?token= instead. When required is false
// every request passes through unchanged.
func AdminAuthMiddleware(verifier TokenVerifier, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !required {
			c.Next()
			return
		}

		tokenString := c.Query("token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Token must be in format: Bearer <token>",
				})
				return
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header required",
			})
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token is invalid or expired",
			})
			return
		}

		c.Set("admin_username", claims.Username)
		c.Set("admin_role", claims.Role)
		c.Next()
	}
}
