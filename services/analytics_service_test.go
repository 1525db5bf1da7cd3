// file: services/analytics_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
	"academy-admin/services"
)

func TestAnalyticsPerformance_CategoryFilter(t *testing.T) {
	svc := services.NewAnalyticsService()

	assert.Len(t, svc.Performance(models.ListFilter{Category: models.FilterAll}), 5)

	got := svc.Performance(models.ListFilter{Category: "U12"})
	assert.Len(t, got, 1)
	assert.Equal(t, 75, got[0].WinRate)
}

func TestAnalyticsTopPerformers_CategoryFilter(t *testing.T) {
	svc := services.NewAnalyticsService()

	got := svc.TopPerformers(models.ListFilter{Category: "U15"})
	assert.Len(t, got, 2)

	got = svc.TopPerformers(models.ListFilter{Category: "U10"})
	assert.Empty(t, got)
}

// The overall cards never follow the filter.
func TestAnalyticsOverall(t *testing.T) {
	svc := services.NewAnalyticsService()

	overall := svc.Overall()
	assert.Len(t, overall, 4)
	assert.Equal(t, "Total Goals", overall[0].Title)
	assert.Equal(t, "342", overall[0].Value)
}

func TestMediaFilter(t *testing.T) {
	svc := services.NewMediaService()

	assert.Len(t, svc.Filter(models.ListFilter{Category: models.FilterAll}), 4)

	got := svc.Filter(models.ListFilter{Category: "U20"})
	assert.Len(t, got, 1)
	assert.Equal(t, "match", got[0].Kind)
}
