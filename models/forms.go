// Package models file: models/forms.go
//
// Pure transforms applied to entry-form input before a record is stored.
package models

import "strings"

// SplitList turns a comma-separated form field into a list of trimmed,
// non-empty strings. "" yields an empty list.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DerivePaymentStatus derives a new payment's status from the paid-date
// field: a payment is "paid" iff a paid date was entered, else "pending".
func DerivePaymentStatus(paidDate string) string {
	if paidDate != "" {
		return "paid"
	}
	return "pending"
}

// MatchesSearch reports whether the term is a case-insensitive substring of
// any of the given fields. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
