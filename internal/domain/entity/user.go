// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the system. The phone number acts as
// the natural primary key: it is the external identifier in every API and is
// the subject claim of issued tokens, so it is immutable once created.
type User struct {
	PhoneNumber  string    // Primary key, immutable after registration.
	FirstName    string    // Profile attribute, freely mutable.
	LastName     string    // Profile attribute, freely mutable.
	Email        string    // Contact email; no uniqueness enforced.
	Role         Role      // Fixed to RoleUser at registration, never user-settable.
	PasswordHash []byte    // Keyed digest of the password; opaque outside the hasher.
	PasswordSalt []byte    // Per-user MAC key paired with PasswordHash; never reused.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
