// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process. The phone
// number is the account identity; a second registration for the same number
// fails without touching the stored credentials. Every account created here
// gets the User role; administrative roles are assigned out of band.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("phoneNumber", input.PhoneNumber))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
		if err == nil {
			srv.log(ctx).Warn("Registration rejected, phone number taken", slog.String("phoneNumber", input.PhoneNumber))

			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by phone number")
		}

		digest, salt, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		newUser := &entity.User{
			PhoneNumber:  input.PhoneNumber,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			Role:         entity.RoleUser,
			PasswordHash: digest,
			PasswordSalt: salt,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("phoneNumber", input.PhoneNumber), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("phoneNumber", registeredUser.PhoneNumber))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the supplied credentials and issues a bearer token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("phoneNumber", input.PhoneNumber))

	user, err := srv.userRepo.FirstByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown phone number", slog.String("phoneNumber", input.PhoneNumber))

			return nil, domainerrors.ErrLoginUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// Recomputing the digest is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("phoneNumber", input.PhoneNumber))

		return nil, domainerrors.ErrWrongPassword
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("phoneNumber", input.PhoneNumber), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("phoneNumber", user.PhoneNumber))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// GetUser loads a single user by phone number.
func (srv *userService) GetUser(ctx context.Context, phoneNumber string) (*entity.User, error) {
	user, err := srv.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone number")
	}

	return user, nil
}
