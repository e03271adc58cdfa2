// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"net/http"
	"strings"

	"rentcar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyPhoneNumber is the echo.Context key the authenticated caller's
// phone number is stored under.
const ContextKeyPhoneNumber = "phoneNumber"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		if claims.PhoneNumber == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Phone number missing from token"})
		}

		// Set caller identity on the context for handlers to use.
		c.Set(ContextKeyPhoneNumber, claims.PhoneNumber)

		return next(c)
	}
}
