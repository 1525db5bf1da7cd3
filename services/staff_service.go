// Package services: services/staff_service.go
package services

import (
	"fmt"
	"strings"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// StaffService owns the staff directory.
type StaffService struct {
	mu    sync.Mutex
	staff []models.StaffMember
}

// NewStaffService creates the store with the academy sample directory.
func NewStaffService() *StaffService {
	return &StaffService{staff: seedStaff()}
}

func seedStaff() []models.StaffMember {
	return []models.StaffMember{
		{
			ID: "1", Name: "Michael Otieno", Role: "Head Coach",
			Email: "michael.otieno@academy.co.ke", Phone: "+254 700 111 222",
			AgeGroups: []string{"U15", "U20"}, Specialization: "Tactical Training",
			Experience:     "8 years",
			Qualifications: []string{"UEFA B License", "Sports Science Degree"},
			JoinDate:       "2020-03-15", Status: "active", Availability: "Full-time",
		},
		{
			ID: "2", Name: "Sarah Wanjiku", Role: "Assistant Coach",
			Email: "sarah.wanjiku@academy.co.ke", Phone: "+254 722 333 444",
			AgeGroups: []string{"U12", "U15"}, Specialization: "Technical Skills",
			Experience:     "5 years",
			Qualifications: []string{"CAF C License", "First Aid Certified"},
			JoinDate:       "2021-08-20", Status: "active", Availability: "Part-time",
		},
		{
			ID: "3", Name: "James Mwangi", Role: "Physio",
			Email: "james.mwangi@academy.co.ke", Phone: "+254 733 555 666",
			AgeGroups: []string{"All"}, Specialization: "Sports Medicine",
			Experience:     "10 years",
			Qualifications: []string{"Physiotherapy Degree", "Sports Medicine Cert"},
			JoinDate:       "2019-11-10", Status: "active", Availability: "Full-time",
		},
		{
			ID: "4", Name: "Mary Njeri", Role: "Coach",
			Email: "mary.njeri@academy.co.ke", Phone: "+254 744 777 888",
			AgeGroups: []string{"U9", "U10"}, Specialization: "Youth Development",
			Experience:     "6 years",
			Qualifications: []string{"CAF D License", "Child Psychology Cert"},
			JoinDate:       "2022-01-05", Status: "active", Availability: "Full-time",
		},
	}
}

// covers reports whether a staff member serves a category; the literal
// "All" in AgeGroups covers every category.
func covers(ageGroups []string, category string) bool {
	for _, g := range ageGroups {
		if g == category || g == "All" {
			return true
		}
	}
	return false
}

// Filter returns staff passing all three filters. The role selector matches
// by substring ("Coach" also matches "Head Coach" and "Assistant Coach");
// search covers name and role.
func (s *StaffService) Filter(f models.ListFilter) []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.StaffMember
	for _, m := range s.staff {
		// Status carries the role selector on the staff page.
		if f.Status != "" && f.Status != models.FilterAll && !strings.Contains(m.Role, f.Status) {
			continue
		}
		if f.Category != "" && f.Category != models.FilterAll && !covers(m.AgeGroups, f.Category) {
			continue
		}
		if !models.MatchesSearch(f.Search, m.Name, m.Role) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Stats computes the directory stat cards over the full dataset.
func (s *StaffService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, fullTime, coaches := 0, 0, 0
	for _, m := range s.staff {
		if m.Status == "active" {
			active++
		}
		if m.Availability == "Full-time" {
			fullTime++
		}
		if strings.Contains(strings.ToLower(m.Role), "coach") {
			coaches++
		}
	}
	return []models.StatCard{
		{Title: "Total Staff", Value: fmt.Sprintf("%d", len(s.staff))},
		{Title: "Active", Value: fmt.Sprintf("%d", active)},
		{Title: "Full-time", Value: fmt.Sprintf("%d", fullTime)},
		{Title: "Coaches", Value: fmt.Sprintf("%d", coaches)},
	}
}

// Add appends a new staff member.
func (s *StaffService) Add(m models.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = append(s.staff, m)
	logger.Info.Printf("StaffService: added %s (%s)", m.Name, m.Role)
}
