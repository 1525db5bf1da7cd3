// file: services/auth_service_test.go
package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"academy-admin/models"
	"academy-admin/services"
)

func TestAuthenticate_AllowList(t *testing.T) {
	svc := services.NewAuthService()

	cases := []struct {
		email    string
		password string
		role     models.Role
	}{
		{"admin@academy.co.ke", "admin123", models.RoleAdmin},
		{"coach@academy.co.ke", "coach123", models.RoleCoach},
		{"parent@academy.co.ke", "parent123", models.RoleParent},
	}
	for _, tc := range cases {
		role, ok := svc.Authenticate(tc.email, tc.password)
		assert.True(t, ok, "expected %s to authenticate", tc.email)
		assert.Equal(t, tc.role, role)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	svc := services.NewAuthService()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@academy.co.ke", "wrong"},
		{"unknown email", "someone@academy.co.ke", "admin123"},
		{"email case variant", "Admin@Academy.co.ke", "admin123"},
		{"password case variant", "admin@academy.co.ke", "Admin123"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, ok := svc.Authenticate(tc.email, tc.password)
			assert.False(t, ok)
			assert.Empty(t, role)
		})
	}
}

func TestNewAuthServiceFromFile(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "creds.json")
	creds := `{"credentials":[
		{"email":"director@academy.co.ke","password":"` + string(hash) + `","role":"admin"},
		{"email":"coach@academy.co.ke","password":"coach123","role":"coach"}
	]}`
	assert.NoError(t, os.WriteFile(path, []byte(creds), 0600))

	svc, err := services.NewAuthServiceFromFile(path)
	assert.NoError(t, err)

	// bcrypt entry verifies against the plain password
	role, ok := svc.Authenticate("director@academy.co.ke", "s3cret")
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)

	// the stored hash itself is not a valid password
	_, ok = svc.Authenticate("director@academy.co.ke", string(hash))
	assert.False(t, ok)

	// plain entry still compares byte-for-byte
	_, ok = svc.Authenticate("coach@academy.co.ke", "coach123")
	assert.True(t, ok)
}

func TestNewAuthServiceFromFile_Errors(t *testing.T) {
	_, err := services.NewAuthServiceFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	assert.NoError(t, os.WriteFile(bad, []byte(`{"credentials":[{"email":"x","password":"y","role":"superuser"}]}`), 0600))
	_, err = services.NewAuthServiceFromFile(bad)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.json")
	assert.NoError(t, os.WriteFile(empty, []byte(`{"credentials":[]}`), 0600))
	_, err = services.NewAuthServiceFromFile(empty)
	assert.Error(t, err)
}
