package usecase

import (
	"context"

	"rentcar/internal/domain/entity"
)

// FavoriteInput identifies one user/car pair in the favorites relation.
type FavoriteInput struct {
	UserPhoneNumber string
	CarID           int
}

// FavoriteUsecase defines the interface for managing a user's favorite cars.
type FavoriteUsecase interface {
	AddToFavorites(ctx context.Context, input *FavoriteInput) error
	RemoveFromFavorites(ctx context.Context, input *FavoriteInput) error
	GetFavoriteCars(ctx context.Context, userPhoneNumber string) ([]*entity.Car, error)
}
