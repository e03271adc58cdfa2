package impl_test

import (
	"context"
	"testing"

	"rentcar/config"
	"rentcar/internal/domain/entity"
	domainerrors "rentcar/internal/domain/errors"
	"rentcar/internal/domain/repository"
	"rentcar/internal/domain/service"
	"rentcar/internal/infra/auth"
	"rentcar/internal/usecase"
	"rentcar/internal/usecase/impl"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func newUserService(t *testing.T, userRepo *MockUserRepository) usecase.UserUsecase {
	t.Helper()

	return impl.NewUserService(impl.UserServiceParams{
		TxManager:    &stubTxManager{factory: &stubRepoFactory{users: userRepo}},
		UserRepo:     userRepo,
		Hasher:       auth.NewHMACHasher(),
		TokenService: newTestTokenService(t),
		Logger:       discardLogger(),
	})
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(nil).Once()

	output, err := svc.Register(context.Background(), &usecase.RegisterUserInput{
		PhoneNumber: "+998901234567",
		FirstName:   "Aziz",
		LastName:    "Karimov",
		Email:       "aziz@example.com",
		Password:    "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	require.Equal(t, "+998901234567", output.User.PhoneNumber)
	require.Equal(t, entity.RoleUser, output.User.Role)
	require.NotEmpty(t, output.User.PasswordHash)
	require.NotEmpty(t, output.User.PasswordSalt)

	// Stored credentials must verify against the original password.
	hasher := auth.NewHMACHasher()
	require.True(t, hasher.Verify("s3cret-pass", output.User.PasswordHash, output.User.PasswordSalt))

	userRepo.AssertExpectations(t)
}

func TestUserService_Register_UserAlreadyExists(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	existing := &entity.User{PhoneNumber: "+998901234567", Role: entity.RoleUser}
	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(existing, nil).Once()

	output, err := svc.Register(context.Background(), &usecase.RegisterUserInput{
		PhoneNumber: "+998901234567",
		FirstName:   "Aziz",
		Password:    "s3cret-pass",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	require.Nil(t, output)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_AlwaysStoresUserRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.Role == entity.RoleUser
	})).Return(nil).Once()

	output, err := svc.Register(context.Background(), &usecase.RegisterUserInput{
		PhoneNumber: "+998901234567",
		FirstName:   "Aziz",
		Password:    "s3cret-pass",
	})

	require.NoError(t, err)
	require.Equal(t, entity.RoleUser, output.User.Role)
	userRepo.AssertExpectations(t)
}

// A concurrent registration can slip past the existence check and hit the
// primary-key constraint on insert. The caller must see the same conflict
// error as when the pre-check catches the duplicate.
func TestUserService_Register_ConflictOnInsert(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate key value violates unique constraint")).Once()

	output, err := svc.Register(context.Background(), &usecase.RegisterUserInput{
		PhoneNumber: "+998901234567",
		FirstName:   "Aziz",
		Password:    "s3cret-pass",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	require.Nil(t, output)
	userRepo.AssertExpectations(t)
}

func TestUserService_Login_Success(t *testing.T) {
	hasher := auth.NewHMACHasher()
	digest, salt, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	storedUser := &entity.User{
		PhoneNumber:  "+998901234567",
		FirstName:    "Aziz",
		LastName:     "Karimov",
		Email:        "aziz@example.com",
		Role:         entity.RoleUser,
		PasswordHash: digest,
		PasswordSalt: salt,
	}

	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FirstByPhoneNumber", mock.Anything, "+998901234567").
		Return(storedUser, nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+998901234567",
		Password:    "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotEmpty(t, output.Token)
	require.Equal(t, storedUser, output.User)

	// The issued token must carry the phone number as its identity claim.
	claims, err := newTestTokenService(t).Validate(output.Token)
	require.NoError(t, err)
	require.Equal(t, "+998901234567", claims.PhoneNumber)

	userRepo.AssertExpectations(t)
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FirstByPhoneNumber", mock.Anything, "+998000000000").
		Return(nil, repository.ErrUserNotFound).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+998000000000",
		Password:    "whatever",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrLoginUserNotFound)
	require.Nil(t, output)
	userRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	hasher := auth.NewHMACHasher()
	digest, salt, err := hasher.Hash("correct-pass")
	require.NoError(t, err)

	storedUser := &entity.User{
		PhoneNumber:  "+998901234567",
		Role:         entity.RoleUser,
		PasswordHash: digest,
		PasswordSalt: salt,
	}

	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FirstByPhoneNumber", mock.Anything, "+998901234567").
		Return(storedUser, nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "+998901234567",
		Password:    "wrong-pass",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrWrongPassword)
	require.Nil(t, output)
	userRepo.AssertExpectations(t)
}

func TestUserService_GetUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	storedUser := &entity.User{PhoneNumber: "+998901234567", FirstName: "Aziz", Role: entity.RoleUser}
	userRepo.On("FindByPhoneNumber", mock.Anything, "+998901234567").
		Return(storedUser, nil).Once()

	user, err := svc.GetUser(context.Background(), "+998901234567")

	require.NoError(t, err)
	require.Equal(t, storedUser, user)
	userRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(t, userRepo)

	userRepo.On("FindByPhoneNumber", mock.Anything, "+998000000000").
		Return(nil, repository.ErrUserNotFound).Once()

	user, err := svc.GetUser(context.Background(), "+998000000000")

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	require.Nil(t, user)
	userRepo.AssertExpectations(t)
}
