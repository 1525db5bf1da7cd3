// file: services/dashboard_service_test.go
package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
	"academy-admin/services"
)

// New activities prepend so the feed reads newest first.
func TestDashboardRecord_PrependsNewest(t *testing.T) {
	svc := services.NewDashboardService()
	seeded := len(svc.Activities())

	svc.Record(models.Activity{ID: "x1", Type: "player", Title: "New Player Registered"})

	got := svc.Activities()
	assert.Len(t, got, seeded+1)
	assert.Equal(t, "x1", got[0].ID)
}

// The feed is bounded; the oldest entries fall off.
func TestDashboardRecord_CapsFeed(t *testing.T) {
	svc := services.NewDashboardService()

	for i := 0; i < 30; i++ {
		svc.Record(models.Activity{ID: fmt.Sprintf("a%d", i), Type: "training"})
	}

	got := svc.Activities()
	assert.Len(t, got, 20)
	assert.Equal(t, "a29", got[0].ID)
	assert.Equal(t, "a10", got[19].ID)
}

func TestDashboardSeeds(t *testing.T) {
	svc := services.NewDashboardService()

	assert.Len(t, svc.Stats(), 6)
	assert.Len(t, svc.Alerts(), 3)
	assert.Len(t, svc.Activities(), 4)
}
