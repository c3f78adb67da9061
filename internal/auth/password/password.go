// Package password hashes and verifies credentials with bcrypt.
//
// Hash output embeds a per-call random salt, so hashing the same plaintext
// twice yields distinct values that both verify. Neither plaintexts nor
// hashes are ever logged by this package.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the fixed bcrypt cost factor. Cost 10 lands around 100ms per
// call on current commodity hardware, slow enough to blunt offline guessing.
const hashCost = 10

// Hash derives a salted one-way hash from the plaintext.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
//
// The comparison runs in time independent of where a mismatch occurs, beyond
// what the bcrypt primitive itself exposes.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
