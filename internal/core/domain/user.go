package domain

import (
	"strings"
	"time"
)

type User struct {
	ID                int
	Username          string `validate:"required,min=2,max=100"`
	Email             string `validate:"required,email,max=255"`
	EncryptedPassword string `validate:"required"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizeEmail is the canonical form stored and compared everywhere.
// The users table carries a unique constraint over this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
