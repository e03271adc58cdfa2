package impl

import (
	"context"
	"log/slog"

	deliverycontext "rentcar/internal/delivery/context"
	"rentcar/internal/domain/entity"
	domainerrors "rentcar/internal/domain/errors"
	"rentcar/internal/domain/repository"
	"rentcar/internal/errors"
	"rentcar/internal/usecase"

	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToFavorites links a car to a user's favorites list. Both sides of the
// relation are checked inside one transaction so a concurrent delete cannot
// leave a dangling link.
func (srv *favoriteService) AddToFavorites(ctx context.Context, input *usecase.FavoriteInput) error {
	srv.log(ctx).Debug("Adding car to favorites",
		slog.String("userPhoneNumber", input.UserPhoneNumber),
		slog.Int("carID", input.CarID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByPhoneNumber(ctx, input.UserPhoneNumber); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if _, err := repoFactory.CarRepo().FindByID(ctx, input.CarID); err != nil {
			if errors.Is(err, repository.ErrCarNotFound) {
				return domainerrors.ErrCarNotFound
			}

			return errors.Wrap(err, "failed to find car")
		}

		favorite := &entity.FavoriteCar{
			UserPhoneNumber: input.UserPhoneNumber,
			CarID:           input.CarID,
		}
		if err := repoFactory.FavoriteRepo().Create(ctx, favorite); err != nil {
			if errors.Is(err, repository.ErrDuplicateFavorite) {
				return domainerrors.ErrFavoriteAlreadyExists
			}

			return errors.Wrap(err, "failed to create favorite")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to add car to favorites",
			slog.String("userPhoneNumber", input.UserPhoneNumber),
			slog.Int("carID", input.CarID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// RemoveFromFavorites unlinks a car from a user's favorites list.
func (srv *favoriteService) RemoveFromFavorites(ctx context.Context, input *usecase.FavoriteInput) error {
	srv.log(ctx).Debug("Removing car from favorites",
		slog.String("userPhoneNumber", input.UserPhoneNumber),
		slog.Int("carID", input.CarID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByPhoneNumber(ctx, input.UserPhoneNumber); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := repoFactory.FavoriteRepo().Delete(ctx, input.UserPhoneNumber, input.CarID); err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return domainerrors.ErrFavoriteNotFound
			}

			return errors.Wrap(err, "failed to delete favorite")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to remove car from favorites",
			slog.String("userPhoneNumber", input.UserPhoneNumber),
			slog.Int("carID", input.CarID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// GetFavoriteCars returns the full car records a user has favorited.
func (srv *favoriteService) GetFavoriteCars(ctx context.Context, userPhoneNumber string) ([]*entity.Car, error) {
	if _, err := srv.userRepo.FindByPhoneNumber(ctx, userPhoneNumber); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	cars, err := srv.favoriteRepo.ListCarsForUser(ctx, userPhoneNumber)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorite cars",
			slog.String("userPhoneNumber", userPhoneNumber),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorite cars")
	}

	return cars, nil
}
