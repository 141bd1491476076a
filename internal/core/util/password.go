package util

import "golang.org/x/crypto/bcrypt"

// GenerateEncrypt hashes a raw password with a per-user random salt.
// Plaintext never leaves this call boundary.
func GenerateEncrypt(password string) (string, error) {
	encrypted, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return "", err
	}

	return string(encrypted), nil
}

// ComparePassword is timing-safe; bcrypt performs the constant-time
// comparison internally.
func ComparePassword(password, encrypted string) error {
	return bcrypt.CompareHashAndPassword([]byte(encrypted), []byte(password))
}
