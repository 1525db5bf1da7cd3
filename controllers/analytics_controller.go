// Package controllers file: controllers/analytics_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/services"
)

// Analytics renders the performance analytics page. The period selector is
// carried through for display; the sample dataset is season-wide.
func Analytics(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("analytics", f)
	data["Overall"] = deps.Analytics.Overall()
	data["Performance"] = deps.Analytics.Performance(f)
	data["TopPerformers"] = deps.Analytics.TopPerformers(f)
	data["Periods"] = services.Periods
	data["Period"] = c.DefaultQuery("period", "season")
	c.HTML(http.StatusOK, "analytics.html", data)
}
