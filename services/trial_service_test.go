// file: services/trial_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
	"academy-admin/services"
)

func TestTrialFilterEvents(t *testing.T) {
	svc := services.NewTrialService()

	got := svc.FilterEvents(models.ListFilter{Category: models.FilterAll, Status: "scheduled"})
	assert.Len(t, got, 2)

	got = svc.FilterEvents(models.ListFilter{Category: "U12", Status: "scheduled"})
	assert.Empty(t, got)

	got = svc.FilterEvents(models.ListFilter{Category: "U12", Status: models.FilterAll})
	assert.Len(t, got, 1)
	assert.Equal(t, "U12 Talent Search", got[0].Title)
}

// The status selector applies to events only; trialists follow the category
// filter alone.
func TestTrialFilterTrialists_IgnoresStatus(t *testing.T) {
	svc := services.NewTrialService()

	got := svc.FilterTrialists(models.ListFilter{Category: models.FilterAll, Status: "scheduled"})
	assert.Len(t, got, 2)

	got = svc.FilterTrialists(models.ListFilter{Category: "U15", Status: "completed"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Peter Kamau", got[0].Name)
}

func TestTrialEventLookup(t *testing.T) {
	svc := services.NewTrialService()

	e, ok := svc.Event("3")
	assert.True(t, ok)
	assert.Equal(t, "U20 Elite Selection", e.Title)

	_, ok = svc.Event("404")
	assert.False(t, ok)
}

func TestTrialStats(t *testing.T) {
	svc := services.NewTrialService()

	stats := svc.Stats()
	assert.Equal(t, "2", stats[0].Value) // scheduled events
	assert.Equal(t, "2", stats[1].Value) // trialists
	assert.Equal(t, "1", stats[2].Value) // evaluated
	assert.Equal(t, "1", stats[3].Value) // recommended accept
}

func TestTrialAdd(t *testing.T) {
	svc := services.NewTrialService()

	svc.AddEvent(models.TrialEvent{ID: "4", Title: "U9 Mini Trials", Category: "U9", Status: "scheduled"})
	svc.AddTrialist(models.Trialist{ID: "3", Name: "Brian Otieno", Category: "U9", Status: "registered"})

	assert.Len(t, svc.FilterEvents(models.ListFilter{Category: "U9", Status: models.FilterAll}), 1)
	assert.Len(t, svc.FilterTrialists(models.ListFilter{Category: "U9"}), 1)
	assert.Equal(t, "3", svc.Stats()[0].Value)
}
