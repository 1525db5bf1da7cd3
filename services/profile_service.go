// Package services: services/profile_service.go
package services

import (
	"sync"

	"academy-admin/models"
)

// ProfileService holds the current operator profile. It is deliberately not
// synchronized with the session role: the session records the login
// identity, the profile records who the dashboard displays.
type ProfileService struct {
	mu      sync.Mutex
	profile models.Profile
}

// NewProfileService creates a ProfileService with the fixed default admin
// identity.
func NewProfileService() *ProfileService {
	return &ProfileService{
		profile: models.Profile{
			ID:        "1",
			Name:      "John Kamau",
			Email:     "john.kamau@academy.co.ke",
			Role:      models.RoleAdmin,
			Avatar:    "/static/images/avatar-default.jpg",
			AgeGroups: []string{"U9", "U10", "U12", "U15", "U20"},
		},
	}
}

// Current returns the operator profile.
func (s *ProfileService) Current() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Set replaces the profile wholesale. Partial updates are not merged.
func (s *ProfileService) Set(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}
