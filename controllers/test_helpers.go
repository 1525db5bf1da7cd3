// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"academy-admin/services"
	"academy-admin/websocket"
)

// setupTestRouter creates a Gin engine with session middleware, fake HTML
// templates and a fresh set of services wired through Init.
func setupTestRouter(t *testing.T) *gin.Engine {
	websocket.InitTest()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))

	Init(Deps{
		Auth:      services.NewAuthService(),
		Profile:   services.NewProfileService(),
		Players:   services.NewPlayerService(),
		Training:  services.NewTrainingService(),
		Matches:   services.NewMatchService(),
		Medical:   services.NewMedicalService(),
		Payments:  services.NewPaymentService(),
		Staff:     services.NewStaffService(),
		Trials:    services.NewTrialService(),
		Media:     services.NewMediaService(),
		Analytics: services.NewAnalyticsService(),
		Dashboard: services.NewDashboardService(),
	})
	SetConfig("http://localhost:8080", "ws://localhost:8080/activity-updates")
	return router
}

// createDummyTemplates writes minimal templates so page handlers can render
// without the real template tree.
func createDummyTemplates(dir string) error {
	names := []string{
		"login.html", "dashboard.html", "players.html", "training.html",
		"matches.html", "medical.html", "fees.html", "staff.html",
		"scouting.html", "analytics.html", "media.html",
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		content := `<html><body>` + name + ` {{.Error}}</body></html>`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// setSession writes the given key/value pairs into a session via a helper
// route and returns the cookie for subsequent requests.
func setSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "testsession" {
			return ck
		}
	}
	return nil
}
