// Package controllers file: controllers/training_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/models"
)

// weekDates returns the Monday-to-Sunday dates around the given day, for
// the training calendar header.
func weekDates(day time.Time) []string {
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday := day.AddDate(0, 0, -offset)
	out := make([]string, 7)
	for i := 0; i < 7; i++ {
		out[i] = monday.AddDate(0, 0, i).Format("2006-01-02")
	}
	return out
}

// Training renders the weekly training calendar. The optional week query
// parameter (any date inside the wanted week) shifts the view.
func Training(c *gin.Context) {
	f := filterFromQuery(c)

	day := time.Now()
	if w := c.Query("week"); w != "" {
		if parsed, err := time.Parse("2006-01-02", w); err == nil {
			day = parsed
		}
	}

	week := weekDates(day)
	calendar := make([]gin.H, len(week))
	for i, date := range week {
		calendar[i] = gin.H{
			"Date":     date,
			"Sessions": deps.Training.ForDate(date, f),
		}
	}

	data := pageData("training", f)
	data["Week"] = calendar
	data["Sessions"] = deps.Training.Filter(f)
	data["Stats"] = deps.Training.Stats()
	c.HTML(http.StatusOK, "training.html", data)
}

// AddTrainingSession schedules a new session from the entry form. New
// sessions start scheduled with zero attendance.
func AddTrainingSession(c *gin.Context) {
	title := c.PostForm("title")
	category := c.PostForm("category")
	coach := c.PostForm("coach")
	date := c.PostForm("date")
	if title == "" || category == "" || coach == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, category, coach and date are required"})
		return
	}

	maxAttendees, err := strconv.Atoi(c.DefaultPostForm("maxAttendees", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxAttendees must be a number"})
		return
	}

	t := models.TrainingSession{
		ID:           uuid.NewString(),
		Title:        title,
		Category:     category,
		Coach:        coach,
		Date:         date,
		Time:         c.PostForm("time"),
		Location:     c.PostForm("location"),
		Focus:        c.PostForm("focus"),
		Attendees:    0,
		MaxAttendees: maxAttendees,
		Status:       "scheduled",
	}
	deps.Training.Add(t)
	recordActivity("training", "Training Session Scheduled", title+" for "+category)
	c.Redirect(http.StatusFound, "/training")
}
