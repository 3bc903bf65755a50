package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role of a user within the system.  Admins manage rooms; regular
// users create and manage their own reservations.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps a string to a known role, defaulting to USER for
// anything unrecognized.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Name length limits applied at construction time.
const (
	UserNameMinLength = 2
	UserNameMaxLength = 100
)

// User represents an account that can request reservations.  Only the
// bcrypt hash of the password is ever stored.
//
// Fields:
//  ID           – opaque unique identifier, generated on creation.
//  Name         – full name, 2..100 characters.
//  Email        – normalized (lower-cased, trimmed) address, unique.
//  PasswordHash – bcrypt hash; never the plain password.
//  Role         – ADMIN or USER.
//  Active       – whether the account is enabled.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser validates the fields and returns a new active user.  The
// password must already be hashed by the caller; plain passwords never
// reach the model layer.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	var msgs []string
	if n := len(name); n < UserNameMinLength || n > UserNameMaxLength {
		msgs = append(msgs, "user name must be between 2 and 100 characters")
	}
	if !validEmail(email) {
		msgs = append(msgs, "email address is not valid")
	}
	if passwordHash == "" {
		msgs = append(msgs, "password hash must not be empty")
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail lower-cases and trims an address so lookups and the
// uniqueness check agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail applies a deliberately loose shape check: one '@' with
// something on both sides and no spaces.  Deliverability is not the
// model's problem.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}
	return !strings.Contains(email[at+1:], "@")
}
