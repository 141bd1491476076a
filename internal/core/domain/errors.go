package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced id is absent.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("already exists")

	// ErrNoChange is returned when the store accepted a mutating call
	// but reported zero affected rows.
	ErrNoChange = errors.New("no rows affected")

	// ErrInvalidCredentials is the single generic login failure. Unknown
	// email and wrong password both map here so the responses stay
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid authentication request")
)
