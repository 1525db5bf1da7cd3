// Package services: services/trial_service.go
package services

import (
	"fmt"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// TrialService owns the scouting page data: trial events and trialists.
type TrialService struct {
	mu        sync.Mutex
	events    []models.TrialEvent
	trialists []models.Trialist
}

// NewTrialService creates the store with the academy sample scouting data.
func NewTrialService() *TrialService {
	return &TrialService{events: seedTrialEvents(), trialists: seedTrialists()}
}

func seedTrialEvents() []models.TrialEvent {
	return []models.TrialEvent{
		{
			ID: "1", Title: "U15 Open Trials", Category: "U15",
			Date: "2024-02-10", Time: "09:00-12:00", Location: "Academy Ground",
			MaxParticipants: 30, RegisteredCount: 18, Status: "scheduled",
			Description:  "Open trials for U15 age category. Focus on technical skills and tactical awareness.",
			Requirements: []string{"Birth certificate", "Medical clearance", "Guardian consent"},
			Scouts:       []string{"Coach Michael", "Coach Sarah"},
		},
		{
			ID: "2", Title: "U12 Talent Search", Category: "U12",
			Date: "2024-01-28", Time: "14:00-17:00", Location: "Training Ground A",
			MaxParticipants: 25, RegisteredCount: 25, Status: "completed",
			Description:  "Talent identification program for promising U12 players.",
			Requirements: []string{"Birth certificate", "Medical clearance"},
			Scouts:       []string{"Coach James", "Coach Mary"},
		},
		{
			ID: "3", Title: "U20 Elite Selection", Category: "U20",
			Date: "2024-02-15", Time: "16:00-19:00", Location: "Main Field",
			MaxParticipants: 20, RegisteredCount: 12, Status: "scheduled",
			Description:  "Elite level trials for U20 category with focus on match readiness.",
			Requirements: []string{"Birth certificate", "Medical clearance", "Previous club records"},
			Scouts:       []string{"Coach Michael", "External Scout"},
		},
	}
}

func seedTrialists() []models.Trialist {
	return []models.Trialist{
		{
			ID: "1", Name: "Peter Kamau", Age: 14, Category: "U15", Position: "Midfielder",
			Guardian: "Grace Kamau", Phone: "+254 700 999 888",
			TrialDate: "2024-02-10", EventID: "1", Status: "registered",
			PreviousClub: "Lions Youth FC", Notes: "Strong technical skills, good vision",
		},
		{
			ID: "2", Name: "Alice Wanjiru", Age: 11, Category: "U12", Position: "Forward",
			Guardian: "John Wanjiru", Phone: "+254 722 777 666",
			TrialDate: "2024-01-28", EventID: "2", Status: "evaluated",
			Evaluation: &models.TrialEvaluation{
				Technical: 8, Physical: 7, Tactical: 6, Mental: 8,
				Overall: 7.5, Recommendation: "Accept",
			},
			PreviousClub: "None", Notes: "Natural goal scorer, needs tactical development",
		},
	}
}

// Event looks up a trial event by ID.
func (s *TrialService) Event(id string) (models.TrialEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.TrialEvent{}, false
}

// FilterEvents returns trial events passing the category and status filters.
func (s *TrialService) FilterEvents(f models.ListFilter) []models.TrialEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.TrialEvent
	for _, e := range s.events {
		if f.CategoryMatches(e.Category) && f.StatusMatches(e.Status) {
			out = append(out, e)
		}
	}
	return out
}

// FilterTrialists returns trialists passing the category filter. The
// scouting page's status selector applies to events only.
func (s *TrialService) FilterTrialists(f models.ListFilter) []models.Trialist {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Trialist
	for _, t := range s.trialists {
		if f.CategoryMatches(t.Category) {
			out = append(out, t)
		}
	}
	return out
}

// Stats computes the scouting stat cards over the full dataset.
func (s *TrialService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	upcoming, evaluated, accepted := 0, 0, 0
	for _, e := range s.events {
		if e.Status == "scheduled" {
			upcoming++
		}
	}
	for _, t := range s.trialists {
		if t.Status == "evaluated" {
			evaluated++
		}
		if t.Evaluation != nil && t.Evaluation.Recommendation == "Accept" {
			accepted++
		}
	}
	return []models.StatCard{
		{Title: "Upcoming Events", Value: fmt.Sprintf("%d", upcoming)},
		{Title: "Registered Trialists", Value: fmt.Sprintf("%d", len(s.trialists))},
		{Title: "Evaluated", Value: fmt.Sprintf("%d", evaluated)},
		{Title: "Recommended Accept", Value: fmt.Sprintf("%d", accepted)},
	}
}

// AddEvent appends a new trial event.
func (s *TrialService) AddEvent(e models.TrialEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	logger.Info.Printf("TrialService: scheduled event %q (%s)", e.Title, e.Category)
}

// AddTrialist appends a new trialist registration.
func (s *TrialService) AddTrialist(t models.Trialist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trialists = append(s.trialists, t)
	logger.Info.Printf("TrialService: registered trialist %s (%s)", t.Name, t.Category)
}
