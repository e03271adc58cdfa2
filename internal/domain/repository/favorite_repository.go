// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"rentcar/internal/domain/entity"
)

// Domain-specific errors for favorite link persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite link is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (user, car) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for the user-to-car favorites relation.
type FavoriteRepository interface {
	// Create persists a new favorite link. A violation of the (user, car)
	// uniqueness constraint is surfaced as ErrDuplicateFavorite, which makes
	// concurrent identical adds converge on a single row.
	Create(ctx context.Context, favorite *entity.FavoriteCar) error

	// Delete removes the link between a user and a car.
	Delete(ctx context.Context, userPhoneNumber string, carID int) error

	// ListCarsForUser resolves the favorite links of a user into car records
	// in one joined query. Order is unspecified. Returns an empty slice when
	// the user has no favorites.
	ListCarsForUser(ctx context.Context, userPhoneNumber string) ([]*entity.Car, error)
}
