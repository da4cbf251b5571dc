package auth

import (
	"fmt"

	"portfolio-backend-go/internal/models"
)

// PlaceholderToken is the constant credential string handed out on login.
// It is never verified by any other part of the system.
const PlaceholderToken = "mock-jwt-token"

type account struct {
	Name     string
	Role     string
	Password string
}

// Fixed credential table. No hashing and no expiry: login is a stub over
// static data, not a real identity system.
var accounts = map[string]account{
	"romanetflavia@gmail.com": {Name: "Flavia Romanet", Role: "admin", Password: "admin123"},
	"client@atelier.dev":      {Name: "Atelier Client", Role: "client", Password: "client123"},
	"studio@atelier.dev":      {Name: "Atelier Studio", Role: "client", Password: "studio123"},
}

// ErrInvalidCredentials is returned when the submitted email/password pair
// does not exactly match an entry in the credential table.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// Authenticate checks the submitted credentials against the fixed table. On
// a match it returns the user and the placeholder token.
func Authenticate(email, password string) (*models.User, string, error) {
	acct, ok := accounts[email]
	if !ok || acct.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	return &models.User{
		Email: email,
		Role:  acct.Role,
		Name:  acct.Name,
	}, PlaceholderToken, nil
}
