package impl

import (
	"context"
	"log/slog"

	deliverycontext "rentcar/internal/delivery/context"
	"rentcar/internal/domain/entity"
	domainerrors "rentcar/internal/domain/errors"
	"rentcar/internal/domain/repository"
	"rentcar/internal/domain/service"
	"rentcar/internal/errors"
	"rentcar/internal/usecase"

	"go.uber.org/fx"
)

// maxCarImages bounds the number of photos a listing can carry; the car
// record has exactly three image URL slots.
const maxCarImages = 3

// carService implements the CarUsecase interface.
type carService struct {
	carRepo     repository.CarRepository
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// CarServiceParams holds dependencies for carService, injected by Fx.
type CarServiceParams struct {
	fx.In

	CarRepo     repository.CarRepository
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewCarService is the constructor for carService.
func NewCarService(params CarServiceParams) usecase.CarUsecase {
	return &carService{
		carRepo:     params.CarRepo,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

func (srv *carService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// uploadImages stores the supplied photos and returns their public URLs,
// padded with empty strings up to the three image slots.
func (srv *carService) uploadImages(ctx context.Context, images []usecase.ImageUpload) ([maxCarImages]string, error) {
	var urls [maxCarImages]string

	if len(images) > maxCarImages {
		return urls, errors.Wrap(domainerrors.ErrValidationFailed, "too many images")
	}

	for i, image := range images {
		url, err := srv.fileStorage.Save(ctx, image.Filename, image.Content)
		if err != nil {
			srv.log(ctx).Error("Failed to store car image", slog.String("filename", image.Filename), slog.Any("error", err))

			return urls, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
		}
		urls[i] = url
	}

	return urls, nil
}

// CreateCar stores the uploaded photos and persists a new car listing.
func (srv *carService) CreateCar(ctx context.Context, input *usecase.CreateCarInput) (*entity.Car, error) {
	srv.log(ctx).Info("Creating car listing", slog.String("brand", input.Brand), slog.String("model", input.Model))

	urls, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	car := &entity.Car{
		Brand:            input.Brand,
		Model:            input.Model,
		Year:             input.Year,
		ImageURL1:        urls[0],
		ImageURL2:        urls[1],
		ImageURL3:        urls[2],
		Price:            input.Price,
		Multiplier:       input.Multiplier,
		Capacity:         input.Capacity,
		Transmission:     input.Transmission,
		FuelCapacity:     input.FuelCapacity,
		City:             input.City,
		CreatedBy:        input.CreatedBy,
		CreatedByEmail:   input.CreatedByEmail,
		OwnerPhoneNumber: input.OwnerPhoneNumber,
	}

	if err := srv.carRepo.Create(ctx, car); err != nil {
		srv.log(ctx).Error("Failed to create car listing", slog.Any("error", err))

		return nil, domainerrors.ErrCarCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Car listing created", slog.Int("carID", car.ID))

	return car, nil
}

// GetCar loads a single car listing by ID.
func (srv *carService) GetCar(ctx context.Context, id int) (*entity.Car, error) {
	car, err := srv.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return car, nil
}

// UpdateCar modifies an existing listing. Freshly uploaded photos replace the
// stored image URLs; with no uploads the existing URLs are kept.
func (srv *carService) UpdateCar(ctx context.Context, input *usecase.UpdateCarInput) (*entity.Car, error) {
	srv.log(ctx).Info("Updating car listing", slog.Int("carID", input.ID))

	car, err := srv.carRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	car.Brand = input.Brand
	car.Model = input.Model
	car.Year = input.Year
	car.Price = input.Price
	car.Multiplier = input.Multiplier
	car.Capacity = input.Capacity
	car.Transmission = input.Transmission
	car.FuelCapacity = input.FuelCapacity
	car.City = input.City

	if len(input.Images) > 0 {
		urls, err := srv.uploadImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		car.ImageURL1 = urls[0]
		car.ImageURL2 = urls[1]
		car.ImageURL3 = urls[2]
	}

	if err := srv.carRepo.Update(ctx, car); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}
		srv.log(ctx).Error("Failed to update car listing", slog.Int("carID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update car")
	}

	return car, nil
}

// DeleteCar removes a car listing by ID.
func (srv *carService) DeleteCar(ctx context.Context, id int) error {
	srv.log(ctx).Info("Deleting car listing", slog.Int("carID", id))

	if err := srv.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return domainerrors.ErrCarNotFound
		}

		return errors.Wrap(err, "failed to delete car")
	}

	return nil
}

// ListCars returns the catalog, optionally narrowed to one city.
func (srv *carService) ListCars(ctx context.Context, city string) ([]*entity.Car, error) {
	var (
		cars []*entity.Car
		err  error
	)

	if city != "" {
		cars, err = srv.carRepo.ListByCity(ctx, city)
	} else {
		cars, err = srv.carRepo.ListAll(ctx)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to list cars", slog.String("city", city), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cars")
	}

	return cars, nil
}
