package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DennisSalmazs/project-service/internal/projects/access"
)

const (
	CtxUsername = "caller_username"
	CtxRoles    = "caller_roles"
)

// SetCaller stores the authenticated caller in the Gin context.
// Middleware is the only writer.
func SetCaller(c *gin.Context, username string, roles []string) {
	c.Set(CtxUsername, username)
	c.Set(CtxRoles, roles)
}

// CallerFrom extracts the authenticated caller set by the auth
// middleware. An empty username means the request was not authenticated.
func CallerFrom(c *gin.Context) access.Caller {
	caller := access.Caller{
		Username: strings.TrimSpace(c.GetString(CtxUsername)),
	}
	if v, ok := c.Get(CtxRoles); ok {
		if roles, ok := v.([]string); ok {
			caller.Roles = roles
		}
	}
	return caller
}
