package auth

import (
	"strings"

	"farmwatch.app/internal/core/farm"
)

// Credentials is the login form
type Credentials struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required,min=6" label:"Password"`
}

// Normalize trims the email the way the login form does
func (c *Credentials) Normalize() {
	c.Email = strings.TrimSpace(c.Email)
}

// normalizeRegistration trims every text field except the password
func normalizeRegistration(r farm.Registration) farm.Registration {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	return r
}
