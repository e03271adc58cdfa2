// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"rentcar/internal/domain/entity"
	domainerrors "rentcar/internal/domain/errors"
	"rentcar/internal/domain/repository"
	"rentcar/internal/infra/persistence/model"
)

// carRepository implements the repository.CarRepository interface using GORM.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{db: db}
}

// FindByID retrieves a single car by its integer key.
func (repo *carRepository) FindByID(ctx context.Context, id int) (*entity.Car, error) {
	var carM model.CarModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&carM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return toCarDomain(&carM), nil
}

// Create persists a new car listing and fills in the generated ID.
func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	if err := repo.db.WithContext(ctx).Create(carM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCarCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCarCreationFailed.WrapMessage("missing required car information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create car")
	}

	car.ID = carM.ID
	car.CreatedAt = carM.CreatedAt
	car.UpdatedAt = carM.UpdatedAt

	return nil
}

// Update modifies an existing car listing.
func (repo *carRepository) Update(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	result := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Where("id = ?", carM.ID).
		Updates(carM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update car")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

// Delete removes a car listing by its ID.
func (repo *carRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CarModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete car")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

// ListAll retrieves every car listing.
func (repo *carRepository) ListAll(ctx context.Context) ([]*entity.Car, error) {
	var carModels []*model.CarModel

	if err := repo.db.WithContext(ctx).
		Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return toCarDomainSlice(carModels), nil
}

// ListByCity retrieves the car listings available in the given city.
func (repo *carRepository) ListByCity(ctx context.Context, city string) ([]*entity.Car, error) {
	var carModels []*model.CarModel

	if err := repo.db.WithContext(ctx).
		Where("city = ?", city).
		Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars by city")
	}

	return toCarDomainSlice(carModels), nil
}

// --- Mapper Functions ---

// toCarDomain converts a GORM CarModel to a domain Car entity.
func toCarDomain(data *model.CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	return &entity.Car{
		ID:               data.ID,
		Brand:            data.Brand,
		Model:            data.Model,
		Year:             data.Year,
		ImageURL1:        data.ImageURL1,
		ImageURL2:        data.ImageURL2,
		ImageURL3:        data.ImageURL3,
		Price:            data.Price,
		Multiplier:       data.Multiplier,
		Capacity:         data.Capacity,
		Transmission:     data.Transmission,
		FuelCapacity:     data.FuelCapacity,
		City:             data.City,
		CreatedBy:        data.CreatedBy,
		CreatedByEmail:   data.CreatedByEmail,
		OwnerPhoneNumber: data.OwnerPhoneNumber,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromCarDomain converts a domain Car entity to a GORM CarModel for persistence.
func fromCarDomain(data *entity.Car) *model.CarModel {
	if data == nil {
		return nil
	}

	return &model.CarModel{
		ID:               data.ID,
		Brand:            data.Brand,
		Model:            data.Model,
		Year:             data.Year,
		ImageURL1:        data.ImageURL1,
		ImageURL2:        data.ImageURL2,
		ImageURL3:        data.ImageURL3,
		Price:            data.Price,
		Multiplier:       data.Multiplier,
		Capacity:         data.Capacity,
		Transmission:     data.Transmission,
		FuelCapacity:     data.FuelCapacity,
		City:             data.City,
		CreatedBy:        data.CreatedBy,
		CreatedByEmail:   data.CreatedByEmail,
		OwnerPhoneNumber: data.OwnerPhoneNumber,
	}
}

func toCarDomainSlice(carModels []*model.CarModel) []*entity.Car {
	cars := make([]*entity.Car, 0, len(carModels))
	for _, carM := range carModels {
		cars = append(cars, toCarDomain(carM))
	}

	return cars
}
