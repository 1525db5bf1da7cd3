// Package controllers renders the dashboard pages and handles form posts.
// File: controllers/controllers.go
package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/services"
	"academy-admin/websocket"
)

// Deps carries every service the controllers need. main constructs the
// services and passes them in once; nothing here reaches for globals.
type Deps struct {
	Auth      services.AuthServiceInterface
	Profile   *services.ProfileService
	Players   *services.PlayerService
	Training  *services.TrainingService
	Matches   *services.MatchService
	Medical   *services.MedicalService
	Payments  *services.PaymentService
	Staff     *services.StaffService
	Trials    *services.TrialService
	Media     *services.MediaService
	Analytics *services.AnalyticsService
	Dashboard *services.DashboardService
}

var deps Deps

var (
	// ApplicationURL is the externally visible base URL.
	ApplicationURL string
	// WebsocketURL is the activity-feed endpoint handed to templates.
	WebsocketURL string
)

// Init wires the controller package to its services.
func Init(d Deps) {
	deps = d
}

// SetConfig sets the application and WebSocket URLs.
func SetConfig(appURL, wsURL string) {
	ApplicationURL = appURL
	WebsocketURL = wsURL
	logger.Info.Printf("SetConfig: ApplicationURL=%s, WebsocketURL=%s", appURL, wsURL)
}

// filterFromQuery reads the three page filters from the query string.
func filterFromQuery(c *gin.Context) models.ListFilter {
	return models.ListFilter{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", models.FilterAll),
		Status:   c.DefaultQuery("status", models.FilterAll),
	}
}

// pageData assembles the fields every shell-rendered page shares.
func pageData(active string, f models.ListFilter) gin.H {
	return gin.H{
		"Active":     active,
		"Profile":    deps.Profile.Current(),
		"Categories": models.Categories,
		"Filter":     f,
	}
}

// recordActivity appends an entry to the dashboard feed and broadcasts it
// to connected clients.
func recordActivity(kind, title, description string) {
	a := models.Activity{
		ID:          uuid.NewString(),
		Type:        kind,
		Title:       title,
		Description: description,
		Time:        time.Now().Format("15:04"),
		User:        deps.Profile.Current().Name,
	}
	deps.Dashboard.Record(a)
	websocket.BroadcastActivity(a)
}
