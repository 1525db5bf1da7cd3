// Package controllers file: controllers/dashboard_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/models"
)

// Dashboard renders the landing page: headline stats, alerts, the
// recent-activity feed and upcoming fixtures. The activity feed also
// updates live over the websocket.
func Dashboard(c *gin.Context) {
	data := pageData("dashboard", models.ListFilter{})
	data["Stats"] = deps.Dashboard.Stats()
	data["Alerts"] = deps.Dashboard.Alerts()
	data["Activities"] = deps.Dashboard.Activities()
	data["UpcomingMatches"] = deps.Matches.Upcoming()
	data["WebsocketURL"] = WebsocketURL
	c.HTML(http.StatusOK, "dashboard.html", data)
}
