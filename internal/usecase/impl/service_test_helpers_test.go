package impl_test

import (
	"context"
	"io"
	"log/slog"

	"rentcar/internal/domain/entity"
	"rentcar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FirstByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) FindByID(ctx context.Context, id int) (*entity.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Car), args.Error(1)
}

func (m *MockCarRepository) Create(ctx context.Context, car *entity.Car) error {
	args := m.Called(ctx, car)

	return args.Error(0)
}

func (m *MockCarRepository) Update(ctx context.Context, car *entity.Car) error {
	args := m.Called(ctx, car)

	return args.Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCarRepository) ListAll(ctx context.Context) ([]*entity.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Car), args.Error(1)
}

func (m *MockCarRepository) ListByCity(ctx context.Context, city string) ([]*entity.Car, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Car), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteCar) error {
	args := m.Called(ctx, favorite)

	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userPhoneNumber string, carID int) error {
	args := m.Called(ctx, userPhoneNumber, carID)

	return args.Error(0)
}

func (m *MockFavoriteRepository) ListCarsForUser(ctx context.Context, userPhoneNumber string) ([]*entity.Car, error) {
	args := m.Called(ctx, userPhoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Car), args.Error(1)
}

// stubRepoFactory hands the test mocks out as transaction-bound repositories.
type stubRepoFactory struct {
	users     *MockUserRepository
	cars      *MockCarRepository
	favorites *MockFavoriteRepository
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *stubRepoFactory) CarRepo() repository.CarRepository {
	return f.cars
}

func (f *stubRepoFactory) FavoriteRepo() repository.FavoriteRepository {
	return f.favorites
}

// stubTxManager runs the transactional function directly against the stub
// factory, with no real transaction underneath.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// MockFileStorage stands in for the upload area.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, content)

	return args.String(0), args.Error(1)
}
