// file: models/records_test.go

//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_CategoryMatches(t *testing.T) {
	assert.True(t, ListFilter{}.CategoryMatches("U12"))
	assert.True(t, ListFilter{Category: FilterAll}.CategoryMatches("U12"))
	assert.True(t, ListFilter{Category: "U12"}.CategoryMatches("U12"))
	assert.False(t, ListFilter{Category: "U15"}.CategoryMatches("U12"))
}

func TestListFilter_StatusMatches(t *testing.T) {
	assert.True(t, ListFilter{}.StatusMatches("pending"))
	assert.True(t, ListFilter{Status: FilterAll}.StatusMatches("paid"))
	assert.True(t, ListFilter{Status: "paid"}.StatusMatches("paid"))
	assert.False(t, ListFilter{Status: "paid"}.StatusMatches("overdue"))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCoach.Valid())
	assert.True(t, RoleParent.Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestMedicalStatusLabels(t *testing.T) {
	assert.Equal(t, "cleared", MedicalStatusLabels["Cleared"])
	assert.Equal(t, "pending", MedicalStatusLabels["Under Review"])
	assert.Equal(t, "expired", MedicalStatusLabels["Requires Attention"])
}
