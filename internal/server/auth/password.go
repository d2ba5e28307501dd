package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of the given plaintext. The salt is
// generated per call, so hashing the same password twice produces
// different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches the stored digest.
// A malformed or foreign-scheme digest compares as false, never as an
// error, so callers treat it exactly like a wrong password.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
