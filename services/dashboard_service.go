// Package services: services/dashboard_service.go
package services

import (
	"sync"

	"academy-admin/models"
)

// DashboardService owns the landing-page data: headline stat cards, alerts,
// and the recent-activity feed. Entry handlers push new activities here so
// the feed reflects records captured during the session.
type DashboardService struct {
	mu         sync.Mutex
	stats      []models.StatCard
	alerts     []models.Alert
	activities []models.Activity
}

// maxActivities bounds the feed; older entries fall off the end.
const maxActivities = 20

// NewDashboardService creates the store with the academy sample feed.
func NewDashboardService() *DashboardService {
	return &DashboardService{
		stats: []models.StatCard{
			{Title: "Total Players", Value: "247", Change: "+12", ChangeType: "increase"},
			{Title: "Active Coaches", Value: "18", Change: "+2", ChangeType: "increase"},
			{Title: "This Month Training", Value: "84", Change: "+6", ChangeType: "increase"},
			{Title: "Matches Played", Value: "32", Change: "+4", ChangeType: "increase"},
			{Title: "Revenue (USD)", Value: "$24,500", Change: "+8.2%", ChangeType: "increase"},
			{Title: "Medical Clearances", Value: "234", Change: "-2", ChangeType: "decrease"},
		},
		alerts: []models.Alert{
			{Type: "warning", Title: "Medical Clearance Expiring", Message: "5 players have medical clearances expiring this week", Time: "2 hours ago"},
			{Type: "info", Title: "New Trial Session", Message: "U15 trial session scheduled for this Saturday", Time: "4 hours ago"},
			{Type: "success", Title: "Payment Received", Message: "$2,400 payment received from U12 group fees", Time: "6 hours ago"},
		},
		activities: []models.Activity{
			{ID: "1", Type: "training", Title: "Training Session Completed", Description: "U15 team completed tactical training", Time: "2 hours ago", User: "Coach Michael"},
			{ID: "2", Type: "player", Title: "New Player Registered", Description: "James Ochieng joined U12 team", Time: "4 hours ago", User: "Admin"},
			{ID: "3", Type: "match", Title: "Match Result Updated", Description: "U15 vs Lions FC: 3-1 victory", Time: "1 day ago", User: "Coach Sarah"},
			{ID: "4", Type: "medical", Title: "Medical Check Completed", Description: "Annual health check for U20 squad", Time: "2 days ago", User: "Dr. Wanjiku"},
		},
	}
}

// Stats returns the headline stat cards.
func (s *DashboardService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Alerts returns the current alerts.
func (s *DashboardService) Alerts() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alerts
}

// Activities returns the recent-activity feed, newest first.
func (s *DashboardService) Activities() []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Record prepends a new activity to the feed.
func (s *DashboardService) Record(a models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]models.Activity{a}, s.activities...)
	if len(s.activities) > maxActivities {
		s.activities = s.activities[:maxActivities]
	}
}
