// Package controllers file: controllers/media_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Media renders the gallery page with albums passing the category filter.
func Media(c *gin.Context) {
	f := filterFromQuery(c)
	data := pageData("media", f)
	data["Albums"] = deps.Media.Filter(f)
	c.HTML(http.StatusOK, "media.html", data)
}
