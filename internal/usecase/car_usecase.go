package usecase

import (
	"context"
	"io"

	"rentcar/internal/domain/entity"
)

// ImageUpload carries one uploaded car photo through the usecase boundary.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CreateCarInput defines the data required to list a new car for rent.
// Up to three images are accepted; extras are rejected at validation time.
type CreateCarInput struct {
	Brand            string
	Model            string
	Year             int
	Price            float64
	Multiplier       int
	Capacity         int
	Transmission     string
	FuelCapacity     int
	City             string
	CreatedBy        string
	CreatedByEmail   string
	OwnerPhoneNumber string
	Images           []ImageUpload
}

// UpdateCarInput defines the mutable fields of an existing car listing.
// Images are replaced only when new uploads are supplied.
type UpdateCarInput struct {
	ID           int
	Brand        string
	Model        string
	Year         int
	Price        float64
	Multiplier   int
	Capacity     int
	Transmission string
	FuelCapacity int
	City         string
	Images       []ImageUpload
}

// CarUsecase defines the interface for car catalog operations.
type CarUsecase interface {
	CreateCar(ctx context.Context, input *CreateCarInput) (*entity.Car, error)
	GetCar(ctx context.Context, id int) (*entity.Car, error)
	UpdateCar(ctx context.Context, input *UpdateCarInput) (*entity.Car, error)
	DeleteCar(ctx context.Context, id int) error
	ListCars(ctx context.Context, city string) ([]*entity.Car, error)
}
