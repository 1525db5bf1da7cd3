// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"academy-admin/logger"
)

// -------------- authentication middleware --------------

// AuthRequired ensures the operator is logged in. It checks the
// "isAuthenticated" session key; when absent or not "true", the request is
// redirected to /login regardless of the requested path.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	flag, _ := session.Get("isAuthenticated").(string)

	if flag != "true" {
		logger.Warn.Printf("AuthRequired: unauthenticated request to %s, redirecting to login", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] session authenticated - proceeding with request")
	c.Next()
}
