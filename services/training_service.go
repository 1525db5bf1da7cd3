// Package services: services/training_service.go
package services

import (
	"fmt"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// TrainingService owns the training calendar.
type TrainingService struct {
	mu       sync.Mutex
	sessions []models.TrainingSession
}

// NewTrainingService creates the store with the academy sample schedule.
func NewTrainingService() *TrainingService {
	return &TrainingService{sessions: seedTrainingSessions()}
}

func seedTrainingSessions() []models.TrainingSession {
	return []models.TrainingSession{
		{
			ID: "1", Title: "Technical Skills Training", Category: "U15", Coach: "Coach Michael",
			Date: "2024-01-20", Time: "15:00-17:00", Location: "Main Field",
			Focus: "Dribbling & Ball Control", Attendees: 18, MaxAttendees: 20, Status: "scheduled",
		},
		{
			ID: "2", Title: "Tactical Training", Category: "U20", Coach: "Coach Sarah",
			Date: "2024-01-21", Time: "16:00-18:00", Location: "Training Ground A",
			Focus: "Formation & Positioning", Attendees: 22, MaxAttendees: 25, Status: "completed",
		},
		{
			ID: "3", Title: "Physical Conditioning", Category: "U12", Coach: "Coach James",
			Date: "2024-01-22", Time: "10:00-11:30", Location: "Fitness Center",
			Focus: "Stamina & Agility", Attendees: 0, MaxAttendees: 15, Status: "scheduled",
		},
	}
}

// Filter returns sessions passing the category filter.
func (s *TrainingService) Filter(f models.ListFilter) []models.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.TrainingSession
	for _, t := range s.sessions {
		if f.CategoryMatches(t.Category) {
			out = append(out, t)
		}
	}
	return out
}

// ForDate returns sessions on a given day passing the category filter, for
// the week calendar view.
func (s *TrainingService) ForDate(date string, f models.ListFilter) []models.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.TrainingSession
	for _, t := range s.sessions {
		if t.Date == date && f.CategoryMatches(t.Category) {
			out = append(out, t)
		}
	}
	return out
}

// Stats computes the training stat cards over the full dataset.
func (s *TrainingService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	scheduled, completed, attendees := 0, 0, 0
	for _, t := range s.sessions {
		switch t.Status {
		case "scheduled":
			scheduled++
		case "completed":
			completed++
		}
		attendees += t.Attendees
	}
	return []models.StatCard{
		{Title: "Scheduled Sessions", Value: fmt.Sprintf("%d", scheduled)},
		{Title: "Completed Sessions", Value: fmt.Sprintf("%d", completed)},
		{Title: "Total Attendance", Value: fmt.Sprintf("%d", attendees)},
	}
}

// Add appends a newly scheduled session.
func (s *TrainingService) Add(t models.TrainingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, t)
	logger.Info.Printf("TrainingService: scheduled %q (%s, %s)", t.Title, t.Category, t.Date)
}
