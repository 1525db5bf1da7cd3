// Package controllers file: controllers/medical_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/models"
)

// MedicalStatuses are the status selector labels on the medical page.
var MedicalStatuses = []string{"All", "Cleared", "Under Review", "Requires Attention"}

// Medical renders the clearance records page.
func Medical(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("medical", f)
	data["Records"] = deps.Medical.Filter(f)
	data["Stats"] = deps.Medical.Stats()
	data["Statuses"] = MedicalStatuses
	c.HTML(http.StatusOK, "medical.html", data)
}

// AddMedicalRecord creates a clearance record from the entry form. The
// clearance status is always "pending" on creation regardless of input;
// injuries, conditions and vaccinations arrive comma-separated and are
// split into trimmed lists.
func AddMedicalRecord(c *gin.Context) {
	playerID := c.PostForm("playerId")
	playerName := c.PostForm("playerName")
	category := c.PostForm("category")
	if playerID == "" || playerName == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerId, playerName and category are required"})
		return
	}

	var injuries []models.Injury
	for _, t := range models.SplitList(c.PostForm("injuries")) {
		injuries = append(injuries, models.Injury{Type: t})
	}

	r := models.MedicalRecord{
		ID:               uuid.NewString(),
		PlayerID:         playerID,
		PlayerName:       playerName,
		Category:         category,
		ClearanceStatus:  "pending",
		ClearanceExpiry:  c.PostForm("clearanceExpiry"),
		LastCheckup:      c.PostForm("lastCheckup"),
		Injuries:         injuries,
		Conditions:       models.SplitList(c.PostForm("conditions")),
		Vaccinations:     models.SplitList(c.PostForm("vaccinations")),
		EmergencyContact: c.PostForm("emergencyContact"),
	}
	deps.Medical.Add(r)
	recordActivity("medical", "Medical Record Added", "Clearance review opened for "+playerName)
	c.Redirect(http.StatusFound, "/medical")
}
