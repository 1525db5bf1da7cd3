// file: services/training_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
	"academy-admin/services"
)

func TestTrainingFilter_Category(t *testing.T) {
	svc := services.NewTrainingService()

	assert.Len(t, svc.Filter(models.ListFilter{Category: models.FilterAll}), 3)

	got := svc.Filter(models.ListFilter{Category: "U12"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Physical Conditioning", got[0].Title)
}

// ForDate narrows to a single calendar day on top of the category filter.
func TestTrainingForDate(t *testing.T) {
	svc := services.NewTrainingService()

	got := svc.ForDate("2024-01-21", models.ListFilter{Category: models.FilterAll})
	assert.Len(t, got, 1)
	assert.Equal(t, "Tactical Training", got[0].Title)

	assert.Empty(t, svc.ForDate("2024-01-21", models.ListFilter{Category: "U12"}))
	assert.Empty(t, svc.ForDate("2024-01-25", models.ListFilter{Category: models.FilterAll}))
}

func TestTrainingStats(t *testing.T) {
	svc := services.NewTrainingService()

	stats := svc.Stats()
	assert.Equal(t, "2", stats[0].Value)  // scheduled
	assert.Equal(t, "1", stats[1].Value)  // completed
	assert.Equal(t, "40", stats[2].Value) // attendance 18+22+0
}

func TestTrainingAdd(t *testing.T) {
	svc := services.NewTrainingService()
	svc.Add(models.TrainingSession{ID: "4", Title: "Goalkeeping Drills", Category: "U9",
		Date: "2024-01-25", Status: "scheduled"})

	assert.Len(t, svc.ForDate("2024-01-25", models.ListFilter{Category: "U9"}), 1)
	assert.Equal(t, "3", svc.Stats()[0].Value)
}
