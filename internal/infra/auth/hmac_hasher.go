// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"

	"github.com/pkg/errors"

	"rentcar/internal/domain/service"
)

// saltLength matches the HMAC-SHA-512 block size, so the salt is used as a
// full-strength MAC key without padding or truncation.
const saltLength = sha512.BlockSize

// hmacHasher is a concrete implementation of the PasswordHasher interface.
// The salt is the HMAC key, not a prefix of the hashed input: two users with
// the same password always end up with unrelated digests.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{}
}

// Hash draws a fresh random salt and computes the HMAC-SHA-512 digest of the
// password keyed by that salt.
func (h *hmacHasher) Hash(password string) (digest, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate password salt")
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil), salt, nil
}

// Verify recomputes the digest under the supplied salt and compares it with
// hmac.Equal, which runs in constant time regardless of where the buffers
// differ.
func (h *hmacHasher) Verify(password string, digest, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return hmac.Equal(mac.Sum(nil), digest)
}
