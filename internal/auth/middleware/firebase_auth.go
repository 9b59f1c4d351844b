package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	authctx "github.com/DennisSalmazs/project-service/internal/auth"
)

// FirebaseAuthMiddleware validates Firebase ID tokens and extracts the
// caller's username and roles. Roles come from the "roles" custom claim
// set by the identity provider.
func FirebaseAuthMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		decodedToken, err := authClient.VerifyIDToken(context.Background(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		username := decodedToken.UID
		if name, ok := decodedToken.Claims["preferred_username"].(string); ok && name != "" {
			username = name
		}

		authctx.SetCaller(c, username, rolesFromClaims(decodedToken.Claims))

		c.Next()
	}
}

func rolesFromClaims(claims map[string]interface{}) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
