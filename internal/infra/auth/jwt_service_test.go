package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcar/config"
	"rentcar/internal/domain/entity"
)

func testConfigWithSecret(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfigWithSecret("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := &entity.User{
		PhoneNumber: "555-0100",
		FirstName:   "Test",
		LastName:    "User",
		Role:        entity.RoleUser,
	}

	token, err := jwtService.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", claims.PhoneNumber)
	assert.Equal(t, "555-0100", claims.Subject)

	// Expiry is a fixed 24-hour window from issuance.
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfigWithSecret("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfigWithSecret("secret-one-very-long-for-testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfigWithSecret("secret-two-very-long-for-testing"))
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{PhoneNumber: "555-0100"})
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfigWithSecret(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "token signing secret must be provided")
}
