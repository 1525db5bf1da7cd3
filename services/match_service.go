// Package services: services/match_service.go
package services

import (
	"fmt"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// MatchService owns the fixture list.
type MatchService struct {
	mu      sync.Mutex
	matches []models.Match
}

// NewMatchService creates the store with the academy sample fixtures.
func NewMatchService() *MatchService {
	return &MatchService{matches: seedMatches()}
}

func intPtr(v int) *int { return &v }

func seedMatches() []models.Match {
	return []models.Match{
		{
			ID: "1", HomeTeam: "Academy U15", AwayTeam: "Warriors FC",
			Date: "2024-01-25", Time: "15:00", Venue: "Academy Ground",
			Competition: "League", Category: "U15", Status: "scheduled",
			Squad: []string{},
		},
		{
			ID: "2", HomeTeam: "Lions FC", AwayTeam: "Academy U20",
			Date: "2024-01-20", Time: "16:30", Venue: "Lions Stadium",
			Competition: "Cup", Category: "U20", Status: "completed",
			HomeScore: intPtr(1), AwayScore: intPtr(3),
			Squad: []string{"James Ochieng", "Kevin Mwangi", "Sarah Wanjiku"},
			Stats: &models.MatchStats{
				Goals: []models.MatchGoal{
					{Player: "James Ochieng", Minute: 23},
					{Player: "Kevin Mwangi", Minute: 45},
					{Player: "Sarah Wanjiku", Minute: 78},
				},
				Cards: []models.MatchCard{
					{Player: "David Kipchoge", Type: "yellow", Minute: 34},
				},
			},
		},
		{
			ID: "3", HomeTeam: "Academy U12", AwayTeam: "Eagles Youth",
			Date: "2024-01-22", Time: "10:00", Venue: "Central Park",
			Competition: "Friendly", Category: "U12", Status: "scheduled",
			Squad: []string{},
		},
	}
}

// Filter returns fixtures passing both the category and status filters.
// The matches page has no free-text search.
func (s *MatchService) Filter(f models.ListFilter) []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Match
	for _, m := range s.matches {
		if f.CategoryMatches(m.Category) && f.StatusMatches(m.Status) {
			out = append(out, m)
		}
	}
	return out
}

// Upcoming returns the scheduled fixtures, for the dashboard widget.
func (s *MatchService) Upcoming() []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Match
	for _, m := range s.matches {
		if m.Status == "scheduled" {
			out = append(out, m)
		}
	}
	return out
}

// Stats computes the fixtures stat cards over the full dataset.
func (s *MatchService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	scheduled, completed, goals := 0, 0, 0
	for _, m := range s.matches {
		switch m.Status {
		case "scheduled":
			scheduled++
		case "completed":
			completed++
		}
		if m.HomeScore != nil {
			goals += *m.HomeScore
		}
		if m.AwayScore != nil {
			goals += *m.AwayScore
		}
	}
	return []models.StatCard{
		{Title: "Upcoming Matches", Value: fmt.Sprintf("%d", scheduled)},
		{Title: "Completed Matches", Value: fmt.Sprintf("%d", completed)},
		{Title: "Total Goals", Value: fmt.Sprintf("%d", goals)},
	}
}

// Add appends a newly scheduled fixture.
func (s *MatchService) Add(m models.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, m)
	logger.Info.Printf("MatchService: scheduled %s vs %s (%s)", m.HomeTeam, m.AwayTeam, m.Date)
}
