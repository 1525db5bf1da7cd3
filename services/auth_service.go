// Package services: services/auth_service.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"academy-admin/logger"
	"academy-admin/models"
)

// AuthServiceInterface validates login credentials against the allow-list.
type AuthServiceInterface interface {
	Authenticate(email, password string) (models.Role, bool)
}

// AuthService holds the credential allow-list. Lookups are exact-match and
// case-sensitive; there is no lockout and no rate limiting.
type AuthService struct {
	creds []models.Credential
}

// defaultCredentials is the embedded allow-list used when no creds file is
// configured.
func defaultCredentials() []models.Credential {
	return []models.Credential{
		{Email: "admin@academy.co.ke", Password: "admin123", Role: models.RoleAdmin},
		{Email: "coach@academy.co.ke", Password: "coach123", Role: models.RoleCoach},
		{Email: "parent@academy.co.ke", Password: "parent123", Role: models.RoleParent},
	}
}

// NewAuthService creates an AuthService backed by the embedded allow-list.
func NewAuthService() *AuthService {
	return &AuthService{creds: defaultCredentials()}
}

// NewAuthServiceFromFile creates an AuthService from a JSON credentials file.
func NewAuthServiceFromFile(path string) (*AuthService, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config
	if err != nil {
		return nil, err
	}

	var list models.CredentialList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}
	if len(list.Credentials) == 0 {
		return nil, fmt.Errorf("credentials file %s contains no entries", path)
	}
	for _, c := range list.Credentials {
		if !c.Role.Valid() {
			return nil, fmt.Errorf("credentials file %s: unknown role %q for %s", path, c.Role, c.Email)
		}
	}

	logger.Info.Printf("Loaded %d credential entries from %s", len(list.Credentials), path)
	return &AuthService{creds: list.Credentials}, nil
}

// comparePassword checks a submitted password against a stored one. Stored
// bcrypt hashes are verified with bcrypt; anything else is an exact match.
func comparePassword(stored, plain string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return stored == plain
}

// Authenticate performs the allow-list lookup. On a miss it returns an empty
// role and false; no state changes on failure.
func (s *AuthService) Authenticate(email, password string) (models.Role, bool) {
	for _, c := range s.creds {
		if c.Email == email && comparePassword(c.Password, password) {
			logger.Info.Printf("Authenticate: %s logged in as %s", email, c.Role)
			return c.Role, true
		}
	}
	logger.Warn.Printf("Authenticate: rejected credentials for %q", email)
	return "", false
}
