package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserValid(t *testing.T) {
	u, err := NewUser("  Ada Lovelace  ", " Ada@Example.COM ", "hash", RoleUser)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada Lovelace", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.True(t, u.Active)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestNewUserCollectsAllViolations(t *testing.T) {
	_, err := NewUser("x", "not-an-email", "", RoleUser)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "user name must be between 2 and 100 characters")
	assert.Contains(t, verr.Messages, "email address is not valid")
	assert.Contains(t, verr.Messages, "password hash must not be empty")
}

func TestValidEmailShapes(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b", true},
		{"user@example.com", true},
		{"@example.com", false},
		{"user@", false},
		{"no-at-sign", false},
		{"two@@signs", false},
		{"has space@example.com", false},
	}
	for _, tc := range cases {
		_, err := NewUser("Valid Name", tc.email, "hash", RoleUser)
		if tc.ok {
			assert.NoError(t, err, tc.email)
		} else {
			assert.Error(t, err, tc.email)
		}
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAdmin, ParseRole(" ADMIN "))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleUser, ParseRole("owner"))
}
