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

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create persists a new favorite link. The composite unique index on
// (user_phone_number, car_id) is the enforcement point for concurrent
// identical adds; its violation surfaces as ErrDuplicateFavorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteCar) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("invalid user or car reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the link between a user and a car.
func (repo *favoriteRepository) Delete(ctx context.Context, userPhoneNumber string, carID int) error {
	result := repo.db.WithContext(ctx).
		Where("user_phone_number = ? AND car_id = ?", userPhoneNumber, carID).
		Delete(&model.FavoriteCarModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// ListCarsForUser resolves favorite links into car records with a single
// joined query instead of one lookup per link.
func (repo *favoriteRepository) ListCarsForUser(ctx context.Context, userPhoneNumber string) ([]*entity.Car, error) {
	var carModels []*model.CarModel

	if err := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Joins("JOIN user_favorite_cars ON user_favorite_cars.car_id = cars.id").
		Where("user_favorite_cars.user_phone_number = ?", userPhoneNumber).
		Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite cars for user")
	}

	return toCarDomainSlice(carModels), nil
}

// --- Mapper Functions ---

// fromFavoriteDomain converts a domain FavoriteCar entity to a GORM FavoriteCarModel.
func fromFavoriteDomain(data *entity.FavoriteCar) *model.FavoriteCarModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteCarModel{
		ID:              data.ID,
		UserPhoneNumber: data.UserPhoneNumber,
		CarID:           data.CarID,
	}
}
