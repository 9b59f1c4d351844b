package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	authctx "github.com/DennisSalmazs/project-service/internal/auth"
)

// HeaderAuthMiddleware trusts X-User-Id and X-User-Roles headers.
// Development only: it lets anything through and is never wired when
// AUTH_MODE is "firebase".
func HeaderAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if username == "" {
			username = "demo-user"
		}

		var roles []string
		for _, r := range strings.Split(c.GetHeader("X-User-Roles"), ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}

		authctx.SetCaller(c, username, roles)
		c.Next()
	}
}
