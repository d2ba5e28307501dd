// Package auth implements the credential and token primitives of the
// server: bcrypt password hashing and HS256 bearer tokens carrying the
// owning user's identifier as the subject claim.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
)

// GenerateToken issues a signed bearer token whose subject is userID and
// whose expiry is now + validityDuration. Tokens are stateless: nothing is
// persisted, validity is determined entirely at verification time.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	return token.SignedString(secretKey)
}

// Verifier validates bearer tokens against a fixed secret. The clock is a
// field so tests can cross the expiry boundary deterministically.
type Verifier struct {
	secretKey []byte
	now       func() time.Time
}

func NewVerifier(secretKey []byte) *Verifier {
	return &Verifier{secretKey: secretKey, now: time.Now}
}

// NewVerifierWithClock is like NewVerifier with an injected time source.
func NewVerifierWithClock(secretKey []byte, now func() time.Time) *Verifier {
	return &Verifier{secretKey: secretKey, now: now}
}

// UserIDFromToken checks the token's signature and expiry and returns the
// embedded subject. A tampered or foreign-signed token yields
// common.ErrInvalidToken, an outdated one common.ErrTokenExpired.
// Verification is pure: repeated calls give the same result until the
// clock crosses the expiry instant.
func (v *Verifier) UserIDFromToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(v.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
