// Package services: services/analytics_service.go
package services

import (
	"academy-admin/models"
)

// AnalyticsService owns the performance analytics dataset: season-wide
// stat cards, per-category performance rows, and the leaderboard.
type AnalyticsService struct {
	overall     []models.StatCard
	performance []models.CategoryPerformance
	topByCat    []models.TopPerformer
}

// Periods are the analytics time-range selector options.
var Periods = []string{"week", "month", "season", "year"}

// NewAnalyticsService creates the store with the academy season data.
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		overall: []models.StatCard{
			{Title: "Total Goals", Value: "342", Change: "+23", ChangeType: "increase"},
			{Title: "Total Assists", Value: "198", Change: "+15", ChangeType: "increase"},
			{Title: "Matches Played", Value: "156", Change: "+8", ChangeType: "increase"},
			{Title: "Win Rate", Value: "68%", Change: "+5%", ChangeType: "increase"},
		},
		performance: []models.CategoryPerformance{
			{Category: "U9", Players: 28, Goals: 45, Assists: 32, Matches: 24, WinRate: 62},
			{Category: "U10", Players: 32, Goals: 58, Assists: 41, Matches: 28, WinRate: 71},
			{Category: "U12", Players: 45, Goals: 89, Assists: 67, Matches: 32, WinRate: 75},
			{Category: "U15", Players: 52, Goals: 98, Assists: 72, Matches: 36, WinRate: 69},
			{Category: "U20", Players: 38, Goals: 76, Assists: 54, Matches: 30, WinRate: 73},
		},
		topByCat: []models.TopPerformer{
			{Name: "James Ochieng", Category: "U15", Goals: 18, Assists: 12, Rating: 4.8},
			{Name: "Sarah Wanjiku", Category: "U20", Goals: 2, Assists: 15, Rating: 4.7},
			{Name: "Kevin Mwangi", Category: "U12", Goals: 14, Assists: 8, Rating: 4.5},
			{Name: "David Kipchoge", Category: "U9", Goals: 8, Assists: 6, Rating: 4.3},
			{Name: "Mary Njeri", Category: "U15", Goals: 12, Assists: 10, Rating: 4.4},
		},
	}
}

// Overall returns the season stat cards.
func (s *AnalyticsService) Overall() []models.StatCard {
	return s.overall
}

// Performance returns the per-category rows passing the category filter.
func (s *AnalyticsService) Performance(f models.ListFilter) []models.CategoryPerformance {
	var out []models.CategoryPerformance
	for _, row := range s.performance {
		if f.CategoryMatches(row.Category) {
			out = append(out, row)
		}
	}
	return out
}

// TopPerformers returns leaderboard rows passing the category filter.
func (s *AnalyticsService) TopPerformers(f models.ListFilter) []models.TopPerformer {
	var out []models.TopPerformer
	for _, p := range s.topByCat {
		if f.CategoryMatches(p.Category) {
			out = append(out, p)
		}
	}
	return out
}
