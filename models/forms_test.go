// file: models/forms_test.go

//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "B"}, SplitList("A, B, B"))
	assert.Equal(t, []string{"COVID-19", "Tetanus"}, SplitList(" COVID-19 ,Tetanus "))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , ,"))
}

// SplitList is idempotent on already-clean input.
func TestSplitList_Idempotent(t *testing.T) {
	first := SplitList("UEFA B License, Sports Science Degree")
	second := SplitList(first[0] + ", " + first[1])
	assert.Equal(t, first, second)
}

func TestDerivePaymentStatus(t *testing.T) {
	assert.Equal(t, "paid", DerivePaymentStatus("2024-01-28"))
	assert.Equal(t, "pending", DerivePaymentStatus(""))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything"))
	assert.True(t, MatchesSearch("mwangi", "Kevin Mwangi", "Midfielder"))
	assert.True(t, MatchesSearch("MWANGI", "Kevin Mwangi"))
	assert.True(t, MatchesSearch("mid", "Kevin Mwangi", "Midfielder"))
	assert.False(t, MatchesSearch("ochieng", "Kevin Mwangi", "Midfielder"))
}
