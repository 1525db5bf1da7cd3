// file: services/staff_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
	"academy-admin/services"
)

// The role selector matches by substring, so "Coach" also picks up the head
// and assistant coaches.
func TestStaffFilter_RoleSubstring(t *testing.T) {
	svc := services.NewStaffService()

	got := svc.Filter(models.ListFilter{Category: models.FilterAll, Status: "Coach"})
	assert.Len(t, got, 3)

	got = svc.Filter(models.ListFilter{Category: models.FilterAll, Status: "Physio"})
	assert.Len(t, got, 1)
	assert.Equal(t, "James Mwangi", got[0].Name)
}

// Staff with AgeGroups ["All"] are visible under every category filter.
func TestStaffFilter_AllAgeGroups(t *testing.T) {
	svc := services.NewStaffService()

	got := svc.Filter(models.ListFilter{Category: "U9", Status: models.FilterAll})
	assert.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.Contains(t, names, "James Mwangi")
	assert.Contains(t, names, "Mary Njeri")
}

func TestStaffFilter_Conjunction(t *testing.T) {
	svc := services.NewStaffService()

	got := svc.Filter(models.ListFilter{Category: "U15", Status: "Coach", Search: "sarah"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Assistant Coach", got[0].Role)

	got = svc.Filter(models.ListFilter{Category: "U9", Status: "Coach", Search: "sarah"})
	assert.Empty(t, got)
}

func TestStaffStats(t *testing.T) {
	svc := services.NewStaffService()

	stats := svc.Stats()
	assert.Equal(t, "4", stats[0].Value)
	assert.Equal(t, "4", stats[1].Value)
	assert.Equal(t, "3", stats[2].Value) // full-time
	assert.Equal(t, "3", stats[3].Value) // coaches
}

func TestStaffAdd(t *testing.T) {
	svc := services.NewStaffService()
	svc.Add(models.StaffMember{ID: "5", Name: "Peter Kamau", Role: "Goalkeeping Coach",
		AgeGroups: []string{"U12"}, Status: "active", Availability: "Part-time"})

	got := svc.Filter(models.ListFilter{Category: "U12", Status: "Coach"})
	assert.Len(t, got, 2)
	assert.Equal(t, "4", svc.Stats()[3].Value)
}
