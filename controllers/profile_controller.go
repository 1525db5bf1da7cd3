// Package controllers file: controllers/profile_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/models"
)

// UpdateProfile replaces the operator profile wholesale from the posted
// form. The profile role is display identity only; it is not reconciled
// with the session's login role.
func UpdateProfile(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	role := models.Role(c.PostForm("role"))
	if name == "" || email == "" || !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and a valid role are required"})
		return
	}

	current := deps.Profile.Current()
	deps.Profile.Set(models.Profile{
		ID:        current.ID,
		Name:      name,
		Email:     email,
		Role:      role,
		Avatar:    c.DefaultPostForm("avatar", current.Avatar),
		AgeGroups: models.SplitList(c.PostForm("ageGroups")),
	})
	c.Redirect(http.StatusFound, "/")
}
