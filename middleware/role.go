// Package middleware file: middleware/role.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"academy-admin/logger"
)

// RoleRequired restricts a route to sessions whose login role is one of the
// allowed roles. Non-matching sessions are sent back to the dashboard.
func RoleRequired(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, _ := session.Get("userRole").(string)

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		logger.Warn.Printf("RoleRequired: role %q blocked from %s", role, c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/")
		c.Abort()
	}
}
