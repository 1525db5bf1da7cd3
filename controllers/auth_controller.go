// Package controllers handles operator authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"academy-admin/logger"
)

// Session keys persisted on login. Both are always set together and cleared
// together; the signed cookie is the only durable session state.
const (
	sessionKeyAuthenticated = "isAuthenticated"
	sessionKeyRole          = "userRole"
)

// Health responds to load balancer health checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ShowLoginPage renders the login form. Already-authenticated sessions go
// straight to the dashboard.
func ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	if flag, _ := session.Get(sessionKeyAuthenticated).(string); flag == "true" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// PerformLogin validates the posted credentials against the allow-list.
// On success it marks the session authenticated, stores the login role and
// redirects to the dashboard. On a credential mismatch the form is
// re-rendered with an inline error; the session is untouched.
func PerformLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		logger.Warn.Println("PerformLogin: missing email or password")
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Please fill in all fields.",
		})
		return
	}

	role, ok := deps.Auth.Authenticate(email, password)
	if !ok {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid email or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyAuthenticated, "true")
	session.Set(sessionKeyRole, string(role))
	if err := session.Save(); err != nil {
		logger.Error.Printf("PerformLogin: failed to save session: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Login failed. Please try again.",
		})
		return
	}

	logger.Info.Printf("PerformLogin: %s logged in as %s", email, role)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears both session keys and sends the operator back to the login
// page. A fresh request afterwards starts logged out.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionKeyAuthenticated)
	session.Delete(sessionKeyRole)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session: %v", err)
	} else {
		logger.Info.Println("Logout: session cleared")
	}
	c.Redirect(http.StatusFound, "/login")
}
