package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for all new hashes. Raising it
// invalidates nothing (old hashes embed their own cost) but slows new
// registrations and logins.
const Cost = 10

// Hash derives a salted bcrypt digest from a plaintext password. The
// plaintext must never be stored or logged; callers get back only the digest.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. bcrypt performs
// a constant-time comparison internally, so this is safe against timing leaks.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
