// Package auth is a lightweight login gate. It identifies the caller as
// the administrator or as one representative and scopes data accordingly;
// it does not verify passwords.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleRepresentative Role = "representative"
)

var (
	ErrUnknownRepresentative = errors.New("email not registered as a representative")
	ErrInvalidRole           = errors.New("invalid role")
	ErrMissingEmail          = errors.New("email is required")
	ErrInvalidToken          = errors.New("invalid token")
	ErrNoSession             = errors.New("no active session")
)

// Session is the identity of the logged-in user.
type Session struct {
	Role             Role      `json:"role"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	RepresentativeID string    `json:"representative_id,omitempty"`
	LoggedInAt       time.Time `json:"logged_in_at"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Scope is the data scope the session is entitled to.
func (s Session) Scope() billing.Scope {
	if s.IsAdmin() {
		return billing.Scope{}
	}

	if s.RepresentativeID == "" && s.Name == "" {
		return billing.Nobody()
	}

	return billing.Scope{RepresentativeID: s.RepresentativeID, RepresentativeName: s.Name}
}

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleRepresentative:
		return r, nil
	}

	return "", ErrInvalidRole
}

// displayName is the part of the email before "@".
func displayName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
