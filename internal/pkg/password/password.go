// Package password provides one-way hashing of user passwords backed by
// bcrypt. Hashes are salted, so the same plaintext produces different
// digests across calls while Compare still succeeds.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt digest of plaintext at the default cost.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plaintext hashes to digest. An empty or malformed
// digest compares false rather than erroring, so a lookup miss shares the
// same code path as a wrong password.
func Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
