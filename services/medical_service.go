// Package services: services/medical_service.go
package services

import (
	"fmt"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// MedicalService owns the clearance records.
type MedicalService struct {
	mu      sync.Mutex
	records []models.MedicalRecord
}

// NewMedicalService creates the store with the academy sample records.
func NewMedicalService() *MedicalService {
	return &MedicalService{records: seedMedicalRecords()}
}

func seedMedicalRecords() []models.MedicalRecord {
	return []models.MedicalRecord{
		{
			ID: "1", PlayerID: "1", PlayerName: "James Ochieng", Category: "U15",
			ClearanceStatus: "cleared", ClearanceExpiry: "2024-08-15", LastCheckup: "2024-01-15",
			Injuries: []models.Injury{
				{Type: "Ankle Sprain", Date: "2023-12-10", Status: "recovered"},
			},
			Conditions:       []string{},
			Vaccinations:     []string{"COVID-19", "Tetanus"},
			EmergencyContact: "+254 700 123 456",
		},
		{
			ID: "2", PlayerID: "2", PlayerName: "Kevin Mwangi", Category: "U12",
			ClearanceStatus: "pending", ClearanceExpiry: "2024-03-20", LastCheckup: "2023-11-20",
			Injuries:         []models.Injury{},
			Conditions:       []string{"Asthma"},
			Vaccinations:     []string{"COVID-19"},
			EmergencyContact: "+254 722 345 678",
		},
		{
			ID: "3", PlayerID: "3", PlayerName: "Sarah Wanjiku", Category: "U20",
			ClearanceStatus: "cleared", ClearanceExpiry: "2024-09-10", LastCheckup: "2024-01-10",
			Injuries:         []models.Injury{},
			Conditions:       []string{},
			Vaccinations:     []string{"COVID-19", "Tetanus", "Hepatitis B"},
			EmergencyContact: "+254 733 567 890",
		},
	}
}

// Filter returns records passing all three filters. The status selector
// speaks labels (Cleared / Under Review / Requires Attention) which map to
// the clearance enum; search covers the player name.
func (s *MedicalService) Filter(f models.ListFilter) []models.MedicalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	wantStatus := ""
	if f.Status != "" && f.Status != models.FilterAll {
		wantStatus = models.MedicalStatusLabels[f.Status]
	}

	var out []models.MedicalRecord
	for _, r := range s.records {
		if !f.CategoryMatches(r.Category) {
			continue
		}
		if wantStatus != "" && r.ClearanceStatus != wantStatus {
			continue
		}
		if !models.MatchesSearch(f.Search, r.PlayerName) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Stats computes the clearance stat cards over the full dataset.
func (s *MedicalService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared, pending, expired, injuries := 0, 0, 0, 0
	for _, r := range s.records {
		switch r.ClearanceStatus {
		case "cleared":
			cleared++
		case "pending":
			pending++
		case "expired":
			expired++
		}
		injuries += len(r.Injuries)
	}
	return []models.StatCard{
		{Title: "Cleared", Value: fmt.Sprintf("%d", cleared)},
		{Title: "Under Review", Value: fmt.Sprintf("%d", pending)},
		{Title: "Requires Attention", Value: fmt.Sprintf("%d", expired)},
		{Title: "Recorded Injuries", Value: fmt.Sprintf("%d", injuries)},
	}
}

// Add appends a new clearance record.
func (s *MedicalService) Add(r models.MedicalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	logger.Info.Printf("MedicalService: added record for %s (%s)", r.PlayerName, r.ClearanceStatus)
}
