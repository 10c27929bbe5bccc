package security

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost used across all credential writes. Raising it
// only affects new hashes; existing digests keep verifying.
const bcryptCost = 12

// HashPassword returns a salted bcrypt digest of the plaintext. Two calls on
// the same input yield different digests.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies plaintext against a stored digest. It fails closed:
// malformed digests and mismatches are both plain false, so the caller cannot
// distinguish a corrupt record from a wrong password.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
