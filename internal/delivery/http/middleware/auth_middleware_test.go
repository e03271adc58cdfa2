package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rentcar/config"
	"rentcar/internal/domain/entity"
	"rentcar/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func issueTestToken(t *testing.T, phoneNumber string) string {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.Issue(&entity.User{PhoneNumber: phoneNumber, Role: entity.RoleUser})
	require.NoError(t, err)

	return token
}

func runAuthenticate(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool, any) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/x", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})
	handler(c)

	return rec, nextCalled, c.Get(ContextKeyPhoneNumber)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := newAuthTestMiddleware(t)
	token := issueTestToken(t, "+998901234567")

	rec, nextCalled, phoneNumber := runAuthenticate(m, "Bearer "+token)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+998901234567", phoneNumber)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := newAuthTestMiddleware(t)

	rec, nextCalled, _ := runAuthenticate(m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	m := newAuthTestMiddleware(t)
	token := issueTestToken(t, "+998901234567")

	rec, nextCalled, _ := runAuthenticate(m, token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	m := newAuthTestMiddleware(t)
	token := issueTestToken(t, "+998901234567")

	rec, nextCalled, _ := runAuthenticate(m, "Bearer "+token+"x")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
