package factory

import (
	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"

	"pokereview/internal/core/domain"
)

// New builds any domain struct with fabricator-generated values,
// overridable per call.
func New[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	return instance.Build(customData...)
}

// NewUser fills EncryptedPassword with a real bcrypt hash of
// "12345678" unless the caller overrides it, so login flows work
// against factory users.
func NewUser(customData ...map[string]any) domain.User {
	hasEncryptedPassword := false

	for _, data := range customData {
		if _, exists := data["EncryptedPassword"]; exists {
			hasEncryptedPassword = true
			break
		}
	}

	if !hasEncryptedPassword {
		encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)

		customData = append(customData, map[string]any{
			"EncryptedPassword": string(encryptedPassword),
		})
	}

	instance := fab.New(domain.User{})

	return instance.Build(customData...)
}
