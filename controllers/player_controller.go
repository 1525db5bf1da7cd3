// Package controllers file: controllers/player_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/logger"
	"academy-admin/models"
)

// Players renders the roster page with the filtered player list and
// unfiltered stat cards.
func Players(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("players", f)
	data["Players"] = deps.Players.Filter(f)
	data["Stats"] = deps.Players.Stats()
	c.HTML(http.StatusOK, "players.html", data)
}

// AddPlayer registers a new player from the entry form. New players start
// with pending medical and fee status and empty season stats.
func AddPlayer(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	position := c.PostForm("position")
	guardian := c.PostForm("guardian")
	phone := c.PostForm("phone")
	if name == "" || category == "" || position == "" || guardian == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, category, position and guardian are required"})
		return
	}

	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a number"})
		return
	}

	p := models.Player{
		ID:            uuid.NewString(),
		Name:          name,
		Age:           age,
		Category:      category,
		Position:      position,
		Guardian:      guardian,
		Phone:         phone,
		JoinDate:      time.Now().Format("2006-01-02"),
		MedicalStatus: "pending",
		FeeStatus:     "pending",
	}
	deps.Players.Add(p)
	recordActivity("player", "New Player Registered", name+" joined "+category+" team")
	logger.Debug.Printf("AddPlayer: %s registered", name)
	c.Redirect(http.StatusFound, "/players")
}
