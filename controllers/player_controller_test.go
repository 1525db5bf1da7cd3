// controllers/player_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
)

// New registrations start with pending medical and fee status and empty
// season stats.
func TestAddPlayer_Defaults(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/players", AddPlayer)

	w := postForm(router, "/players", url.Values{
		"name":     {"Brian Otieno"},
		"age":      {"10"},
		"category": {"U10"},
		"position": {"Winger"},
		"guardian": {"Paul Otieno"},
		"phone":    {"+254 755 123 456"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/players", w.Header().Get("Location"))

	got := deps.Players.Filter(models.ListFilter{Category: "U10"})
	assert.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "pending", p.MedicalStatus)
	assert.Equal(t, "pending", p.FeeStatus)
	assert.Equal(t, 0, p.Goals)
	assert.Equal(t, time.Now().Format("2006-01-02"), p.JoinDate)
}

func TestAddPlayer_MissingGuardian(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/players", AddPlayer)

	w := postForm(router, "/players", url.Values{
		"name":     {"Brian Otieno"},
		"age":      {"10"},
		"category": {"U10"},
		"position": {"Winger"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

// Registering a player lands an entry on the dashboard activity feed.
func TestAddPlayer_RecordsActivity(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/players", AddPlayer)

	before := len(deps.Dashboard.Activities())
	postForm(router, "/players", url.Values{
		"name":     {"Brian Otieno"},
		"age":      {"10"},
		"category": {"U10"},
		"position": {"Winger"},
		"guardian": {"Paul Otieno"},
	})

	activities := deps.Dashboard.Activities()
	assert.Equal(t, before+1, len(activities))
	assert.Equal(t, "New Player Registered", activities[0].Title)
}

func TestPlayersPage_Renders(t *testing.T) {
	router := setupTestRouter(t)
	router.GET("/players", Players)

	req, _ := http.NewRequest("GET", "/players?category=U15&search=james", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "players.html")
}
