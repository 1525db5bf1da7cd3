// Package models defines data structures used across the application.
// File: models/user.go
package models

// ----------------------- roles -----------------------

// Role is the academy login role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleParent Role = "parent"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleParent:
		return true
	}
	return false
}

// ----------------------- credential model -----------------------

// Credential is one entry of the login allow-list. Password may be either a
// bcrypt hash or a plain string; AuthService picks the comparison accordingly.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// CredentialList holds the credential allow-list as loaded from JSON.
type CredentialList struct {
	Credentials []Credential `json:"credentials"`
}

// ----------------------- operator profile -----------------------

// Profile is the current operator's display identity. It is independent of
// the session role: the session says who logged in, the profile says who the
// dashboard is operating as.
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Avatar    string   `json:"avatar,omitempty"`
	AgeGroups []string `json:"ageGroups,omitempty"`
}
