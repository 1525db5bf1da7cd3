// Package controllers file: controllers/scouting_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/services"
)

// TrialStatuses are the event status selector options on the scouting page.
var TrialStatuses = []string{"All", "scheduled", "completed", "cancelled"}

// Scouting renders the trials page: events and trialists side by side.
// The status selector applies to events only.
func Scouting(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("scouting", f)
	data["Events"] = deps.Trials.FilterEvents(f)
	data["Trialists"] = deps.Trials.FilterTrialists(f)
	data["Stats"] = deps.Trials.Stats()
	data["Statuses"] = TrialStatuses
	c.HTML(http.StatusOK, "scouting.html", data)
}

// AddTrialEvent schedules a scouting event from the entry form. New events
// start scheduled with zero registrations; requirements and scouts arrive
// comma-separated.
func AddTrialEvent(c *gin.Context) {
	title := c.PostForm("title")
	category := c.PostForm("category")
	date := c.PostForm("date")
	if title == "" || category == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, category and date are required"})
		return
	}

	maxParticipants, err := strconv.Atoi(c.DefaultPostForm("maxParticipants", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxParticipants must be a number"})
		return
	}

	e := models.TrialEvent{
		ID:              uuid.NewString(),
		Title:           title,
		Category:        category,
		Date:            date,
		Time:            c.PostForm("time"),
		Location:        c.PostForm("location"),
		MaxParticipants: maxParticipants,
		RegisteredCount: 0,
		Status:          "scheduled",
		Description:     c.PostForm("description"),
		Requirements:    models.SplitList(c.PostForm("requirements")),
		Scouts:          models.SplitList(c.PostForm("scouts")),
	}
	deps.Trials.AddEvent(e)
	recordActivity("trial", "Trial Event Scheduled", title+" on "+date)
	c.Redirect(http.StatusFound, "/scouting")
}

// AddTrialist registers a prospect from the entry form. New trialists start
// registered with no evaluation.
func AddTrialist(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	if name == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
		return
	}

	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a number"})
		return
	}

	t := models.Trialist{
		ID:           uuid.NewString(),
		Name:         name,
		Age:          age,
		Category:     category,
		Position:     c.PostForm("position"),
		Guardian:     c.PostForm("guardian"),
		Phone:        c.PostForm("phone"),
		TrialDate:    c.PostForm("trialDate"),
		EventID:      c.PostForm("eventId"),
		Status:       "registered",
		Evaluation:   nil,
		PreviousClub: c.PostForm("previousClub"),
		Notes:        c.PostForm("notes"),
	}
	deps.Trials.AddTrialist(t)
	recordActivity("trial", "Trialist Registered", name+" registered for "+category+" trials")
	c.Redirect(http.StatusFound, "/scouting")
}

// TrialEventQRCode renders a PNG QR code linking to the event's public
// registration page, for printing on flyers.
func TrialEventQRCode(c *gin.Context) {
	id := c.Param("id")
	event, ok := deps.Trials.Event(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown trial event"})
		return
	}

	url := ApplicationURL + "/scouting?event=" + event.ID
	png, err := services.GenerateQRCode(url, 300, qrcode.Encode)
	if err != nil {
		logger.Error.Printf("TrialEventQRCode: error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"trial-event.png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Error.Printf("TrialEventQRCode: error writing QR code bytes: %v", err)
	}
}
