// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// The scheme is a keyed hash: the salt is a fresh random MAC key generated per
// registration, and the digest is only meaningful against its paired salt.
type PasswordHasher interface {
	// Hash generates a fresh random salt and the keyed digest of the
	// plaintext password under that salt.
	Hash(password string) (digest, salt []byte, err error)

	// Verify recomputes the keyed digest of the password under the supplied
	// salt and compares it to the supplied digest in constant time.
	Verify(password string, digest, salt []byte) bool
}
