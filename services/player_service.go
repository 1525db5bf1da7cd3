// Package services: services/player_service.go
package services

import (
	"fmt"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// PlayerService owns the player roster for the players page. The dataset is
// fixed at construction; new records only arrive through Add.
type PlayerService struct {
	mu      sync.Mutex
	players []models.Player
}

// NewPlayerService creates the roster store with the academy sample data.
func NewPlayerService() *PlayerService {
	return &PlayerService{players: seedPlayers()}
}

func seedPlayers() []models.Player {
	return []models.Player{
		{
			ID: "1", Name: "James Ochieng", Age: 14, Category: "U15", Position: "Forward",
			Guardian: "Mary Ochieng", Phone: "+254 700 123 456", JoinDate: "2023-08-15",
			Goals: 12, Assists: 8, Matches: 18, Rating: 4.2,
			MedicalStatus: "cleared", FeeStatus: "paid",
		},
		{
			ID: "2", Name: "Kevin Mwangi", Age: 11, Category: "U12", Position: "Midfielder",
			Guardian: "Peter Mwangi", Phone: "+254 722 345 678", JoinDate: "2023-09-20",
			Goals: 6, Assists: 14, Matches: 16, Rating: 3.9,
			MedicalStatus: "pending", FeeStatus: "overdue",
		},
		{
			ID: "3", Name: "Sarah Wanjiku", Age: 16, Category: "U20", Position: "Goalkeeper",
			Guardian: "Jane Wanjiku", Phone: "+254 733 567 890", JoinDate: "2023-07-10",
			Goals: 0, Assists: 2, Matches: 20, Rating: 4.7,
			MedicalStatus: "cleared", FeeStatus: "paid",
		},
		{
			ID: "4", Name: "David Kipchoge", Age: 9, Category: "U9", Position: "Defender",
			Guardian: "Ruth Kipchoge", Phone: "+254 744 789 012", JoinDate: "2023-10-05",
			Goals: 2, Assists: 3, Matches: 12, Rating: 3.5,
			MedicalStatus: "cleared", FeeStatus: "paid",
		},
	}
}

// All returns a copy of the full roster.
func (s *PlayerService) All() []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Player, len(s.players))
	copy(out, s.players)
	return out
}

// Filter returns the players visible under the given filters. Visibility is
// the conjunction of the category filter and a case-insensitive search over
// name and position.
func (s *PlayerService) Filter(f models.ListFilter) []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Player
	for _, p := range s.players {
		if !f.CategoryMatches(p.Category) {
			continue
		}
		if !models.MatchesSearch(f.Search, p.Name, p.Position) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Stats computes the roster stat cards over the full unfiltered dataset.
func (s *PlayerService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared, paid, goals := 0, 0, 0
	for _, p := range s.players {
		if p.MedicalStatus == "cleared" {
			cleared++
		}
		if p.FeeStatus == "paid" {
			paid++
		}
		goals += p.Goals
	}
	return []models.StatCard{
		{Title: "Total Players", Value: fmt.Sprintf("%d", len(s.players))},
		{Title: "Medically Cleared", Value: fmt.Sprintf("%d", cleared)},
		{Title: "Fees Paid", Value: fmt.Sprintf("%d", paid)},
		{Title: "Season Goals", Value: fmt.Sprintf("%d", goals)},
	}
}

// Add appends a newly registered player to the roster.
func (s *PlayerService) Add(p models.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append(s.players, p)
	logger.Info.Printf("PlayerService: registered player %s (%s)", p.Name, p.Category)
}
