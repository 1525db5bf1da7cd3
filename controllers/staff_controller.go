// Package controllers file: controllers/staff_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/models"
)

// StaffRoles are the role selector options on the staff page. The selector
// rides the status query parameter and matches roles by substring.
var StaffRoles = []string{"All", "Coach", "Assistant Coach", "Physio", "Admin", "Groundskeeper"}

// Staff renders the staff directory.
func Staff(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("staff", f)
	data["Staff"] = deps.Staff.Filter(f)
	data["Stats"] = deps.Staff.Stats()
	data["Roles"] = StaffRoles
	c.HTML(http.StatusOK, "staff.html", data)
}

// AddStaffMember adds a directory entry from the entry form. Age groups and
// qualifications arrive comma-separated; new members start active.
func AddStaffMember(c *gin.Context) {
	name := c.PostForm("name")
	role := c.PostForm("role")
	email := c.PostForm("email")
	if name == "" || role == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, role and email are required"})
		return
	}

	m := models.StaffMember{
		ID:             uuid.NewString(),
		Name:           name,
		Role:           role,
		Email:          email,
		Phone:          c.PostForm("phone"),
		AgeGroups:      models.SplitList(c.PostForm("ageGroups")),
		Specialization: c.PostForm("specialization"),
		Experience:     c.PostForm("experience"),
		Qualifications: models.SplitList(c.PostForm("qualifications")),
		JoinDate:       time.Now().Format("2006-01-02"),
		Status:         "active",
		Availability:   c.DefaultPostForm("availability", "Full-time"),
	}
	deps.Staff.Add(m)
	recordActivity("staff", "Staff Member Added", name+" joined as "+role)
	c.Redirect(http.StatusFound, "/staff")
}
