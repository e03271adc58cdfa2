package impl_test

import (
	"context"
	"testing"

	"rentcar/internal/domain/entity"
	domainerrors "rentcar/internal/domain/errors"
	"rentcar/internal/domain/repository"
	"rentcar/internal/usecase"
	"rentcar/internal/usecase/impl"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(userRepo *MockUserRepository, carRepo *MockCarRepository, favoriteRepo *MockFavoriteRepository) usecase.FavoriteUsecase {
	factory := &stubRepoFactory{users: userRepo, cars: carRepo, favorites: favoriteRepo}

	return impl.NewFavoriteService(impl.FavoriteServiceParams{
		TxManager:    &stubTxManager{factory: factory},
		UserRepo:     userRepo,
		FavoriteRepo: favoriteRepo,
		Logger:       discardLogger(),
	})
}

func TestFavoriteService_AddToFavorites_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(&entity.User{PhoneNumber: "+998901234567"}, nil).Once()
	carRepo.On("FindByID", mock.Anything, 7).
		Return(&entity.Car{ID: 7}, nil).Once()
	favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.FavoriteCar")).
		Return(nil).Once()

	err := svc.AddToFavorites(context.Background(), &usecase.FavoriteInput{
		UserPhoneNumber: "+998901234567",
		CarID:           7,
	})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	carRepo.AssertExpectations(t)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_AddToFavorites_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998000000000").
		Return(nil, repository.ErrUserNotFound).Once()

	err := svc.AddToFavorites(context.Background(), &usecase.FavoriteInput{
		UserPhoneNumber: "+998000000000",
		CarID:           7,
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	carRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteService_AddToFavorites_CarNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(&entity.User{PhoneNumber: "+998901234567"}, nil).Once()
	carRepo.On("FindByID", mock.Anything, 99).
		Return(nil, repository.ErrCarNotFound).Once()

	err := svc.AddToFavorites(context.Background(), &usecase.FavoriteInput{
		UserPhoneNumber: "+998901234567",
		CarID:           99,
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrCarNotFound)
	favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteService_AddToFavorites_Duplicate(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(&entity.User{PhoneNumber: "+998901234567"}, nil).Once()
	carRepo.On("FindByID", mock.Anything, 7).
		Return(&entity.Car{ID: 7}, nil).Once()
	favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.FavoriteCar")).
		Return(repository.ErrDuplicateFavorite).Once()

	err := svc.AddToFavorites(context.Background(), &usecase.FavoriteInput{
		UserPhoneNumber: "+998901234567",
		CarID:           7,
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_RemoveFromFavorites_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(&entity.User{PhoneNumber: "+998901234567"}, nil).Once()
	favoriteRepo.On("Delete", mock.Anything, "+998901234567", 7).
		Return(nil).Once()

	err := svc.RemoveFromFavorites(context.Background(), &usecase.FavoriteInput{
		UserPhoneNumber: "+998901234567",
		CarID:           7,
	})

	require.NoError(t, err)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_RemoveFromFavorites_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(&entity.User{PhoneNumber: "+998901234567"}, nil).Once()
	favoriteRepo.On("Delete", mock.Anything, "+998901234567", 7).
		Return(repository.ErrFavoriteNotFound).Once()

	err := svc.RemoveFromFavorites(context.Background(), &usecase.FavoriteInput{
		UserPhoneNumber: "+998901234567",
		CarID:           7,
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_GetFavoriteCars_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	cars := []*entity.Car{{ID: 1, Brand: "Chevrolet"}, {ID: 2, Brand: "Kia"}}
	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(&entity.User{PhoneNumber: "+998901234567"}, nil).Once()
	favoriteRepo.On("ListCarsForUser", mock.Anything, "+998901234567").
		Return(cars, nil).Once()

	got, err := svc.GetFavoriteCars(context.Background(), "+998901234567")

	require.NoError(t, err)
	require.Equal(t, cars, got)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_GetFavoriteCars_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	carRepo := new(MockCarRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newFavoriteService(userRepo, carRepo, favoriteRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998000000000").
		Return(nil, repository.ErrUserNotFound).Once()

	got, err := svc.GetFavoriteCars(context.Background(), "+998000000000")

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	require.Nil(t, got)
	favoriteRepo.AssertNotCalled(t, "ListCarsForUser", mock.Anything, mock.Anything)
}
