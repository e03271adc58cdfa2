// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"rentcar/internal/domain/entity"
)

// ErrCarNotFound is a domain-specific error returned when a car is not found.
var ErrCarNotFound = errors.New("car not found")

// CarRepository defines the interface for car catalog persistence.
type CarRepository interface {
	// FindByID retrieves a single car by its integer key.
	FindByID(ctx context.Context, id int) (*entity.Car, error)

	// Create persists a new car listing and fills in the generated ID.
	Create(ctx context.Context, car *entity.Car) error

	// Update modifies an existing car listing.
	Update(ctx context.Context, car *entity.Car) error

	// Delete removes a car listing by its ID.
	Delete(ctx context.Context, id int) error

	// ListAll retrieves every car listing.
	ListAll(ctx context.Context) ([]*entity.Car, error)

	// ListByCity retrieves the car listings available in the given city.
	ListByCity(ctx context.Context, city string) ([]*entity.Car, error)
}
