package service

import (
	"github.com/golang-jwt/jwt/v5"

	"rentcar/internal/domain/entity"
)

// Claims defines the custom claims carried by issued tokens. The phone number
// doubles as the registered subject; it is the only identity claim.
type Claims struct {
	PhoneNumber string `json:"phoneNumber"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are never persisted; validity is decided purely by signature and
// expiry at the point of use.
type TokenService interface {
	// Issue creates a signed token for the given user with a fixed expiry
	// window from the moment of issuance.
	Issue(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims.
	Validate(tokenString string) (*Claims, error)
}
