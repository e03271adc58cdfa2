// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"rentcar/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByPhoneNumber retrieves a single user by primary key.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FirstByPhoneNumber retrieves the first user matching the phone number
	// predicate. Behaviourally identical to FindByPhoneNumber today; kept
	// separate because login is modelled as a query rather than a key lookup.
	FirstByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// Create persists a new user. A primary-key collision is surfaced as
	// domainerrors.ErrUserAlreadyExists so concurrent registrations of the
	// same phone number resolve to the same user-visible outcome as the
	// pre-insert existence check.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
