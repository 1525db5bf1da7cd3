// Package services: services/payment_service.go
package services

import (
	"fmt"
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// PaymentService owns the fee records.
type PaymentService struct {
	mu       sync.Mutex
	payments []models.Payment
}

// NewPaymentService creates the store with the academy sample fee records.
func NewPaymentService() *PaymentService {
	return &PaymentService{payments: seedPayments()}
}

func seedPayments() []models.Payment {
	return []models.Payment{
		{
			ID: "1", PlayerID: "1", PlayerName: "James Ochieng", Category: "U15",
			FeeType: "Monthly Training", Amount: 50, DueDate: "2024-01-31",
			PaidDate: "2024-01-28", Status: "paid", PaymentMethod: "M-Pesa",
			Guardian: "Mary Ochieng", Phone: "+254 700 123 456",
		},
		{
			ID: "2", PlayerID: "2", PlayerName: "Kevin Mwangi", Category: "U12",
			FeeType: "Monthly Training", Amount: 40, DueDate: "2024-01-31",
			Status: "overdue", Guardian: "Peter Mwangi", Phone: "+254 722 345 678",
		},
		{
			ID: "3", PlayerID: "3", PlayerName: "Sarah Wanjiku", Category: "U20",
			FeeType: "Tournament Fee", Amount: 75, DueDate: "2024-02-15",
			Status: "pending", Guardian: "Jane Wanjiku", Phone: "+254 733 567 890",
		},
		{
			ID: "4", PlayerID: "4", PlayerName: "David Kipchoge", Category: "U9",
			FeeType: "Registration Fee", Amount: 30, DueDate: "2024-02-10",
			PaidDate: "2024-01-25", Status: "paid", PaymentMethod: "Bank Transfer",
			Guardian: "Ruth Kipchoge", Phone: "+254 744 789 012",
		},
	}
}

// Filter returns fee records passing all three filters; search covers the
// player and guardian names.
func (s *PaymentService) Filter(f models.ListFilter) []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Payment
	for _, p := range s.payments {
		if !f.CategoryMatches(p.Category) {
			continue
		}
		if !f.StatusMatches(p.Status) {
			continue
		}
		if !models.MatchesSearch(f.Search, p.PlayerName, p.Guardian) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Stats computes the fee stat cards over the full dataset: collected
// revenue, outstanding amounts, and the paid count.
func (s *PaymentService) Stats() []models.StatCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	var revenue, pending, overdue float64
	paidCount := 0
	for _, p := range s.payments {
		switch p.Status {
		case "paid":
			revenue += p.Amount
			paidCount++
		case "pending":
			pending += p.Amount
		case "overdue":
			overdue += p.Amount
		}
	}
	return []models.StatCard{
		{Title: "Total Revenue", Value: fmt.Sprintf("$%.0f", revenue)},
		{Title: "Pending Amount", Value: fmt.Sprintf("$%.0f", pending)},
		{Title: "Overdue Amount", Value: fmt.Sprintf("$%.0f", overdue)},
		{Title: "Payments Received", Value: fmt.Sprintf("%d", paidCount)},
	}
}

// Add appends a new fee record.
func (s *PaymentService) Add(p models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, p)
	logger.Info.Printf("PaymentService: recorded %s fee of %.2f for %s (%s)", p.FeeType, p.Amount, p.PlayerName, p.Status)
}
