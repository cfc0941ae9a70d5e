package middleware

import (
	"net/http"

	"mediq/internal/domain/entity"
	"mediq/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	KeyAccountID = "accountID"
	KeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := m.tokenSvc.ExtractTokenFromHeader(c.Request())
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing or not a Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set account info on the context for handlers to use
		c.Set(KeyAccountID, claims.AccountID)
		c.Set(KeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the account holds one of
// the allowed roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowedRoles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(allowedRoles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyRole).(string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !allowed.Contains(entity.Role(role)) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role '" + role + "' is not allowed"})
			}

			return next(c)
		}
	}
}
