package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash hashes a plaintext credential with bcrypt.
// Used for both the primary password and the linked serial-ID credential,
// so neither is ever stored in the clear.
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks a plaintext credential against a bcrypt hash
func Verify(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
