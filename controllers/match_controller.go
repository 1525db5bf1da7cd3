// Package controllers file: controllers/match_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/models"
)

// Matches renders the fixtures page. There is no free-text search here;
// only category and status apply.
func Matches(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("matches", f)
	data["Matches"] = deps.Matches.Filter(f)
	data["Stats"] = deps.Matches.Stats()
	c.HTML(http.StatusOK, "matches.html", data)
}

// AddMatch schedules a new fixture from the entry form. New fixtures start
// scheduled with no score, no squad and no match stats.
func AddMatch(c *gin.Context) {
	homeTeam := c.PostForm("homeTeam")
	awayTeam := c.PostForm("awayTeam")
	category := c.PostForm("category")
	date := c.PostForm("date")
	if homeTeam == "" || awayTeam == "" || category == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "homeTeam, awayTeam, category and date are required"})
		return
	}

	m := models.Match{
		ID:          uuid.NewString(),
		HomeTeam:    homeTeam,
		AwayTeam:    awayTeam,
		Date:        date,
		Time:        c.PostForm("time"),
		Venue:       c.PostForm("venue"),
		Competition: c.DefaultPostForm("competition", "Friendly"),
		Category:    category,
		Status:      "scheduled",
		Squad:       []string{},
	}
	deps.Matches.Add(m)
	recordActivity("match", "Match Scheduled", homeTeam+" vs "+awayTeam+" on "+date)
	c.Redirect(http.StatusFound, "/matches")
}
