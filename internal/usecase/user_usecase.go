// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rentcar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	PhoneNumber string
	FirstName   string
	LastName    string
	Email       string
	Password    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	PhoneNumber string
	Password    string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
// Credential material never leaves the usecase layer.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token together with the
// profile fields the client renders after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, phoneNumber string) (*entity.User, error)
}
