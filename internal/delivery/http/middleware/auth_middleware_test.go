package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mediq/internal/domain/entity"
	domainerrors "mediq/internal/domain/errors"
	"mediq/internal/domain/service"
	mockSvc "mediq/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_SetsAccountContext(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t)
	accountID := uuid.New()

	tokenSvc.On("ExtractTokenFromHeader", c.Request()).Return("valid_token", true)
	tokenSvc.On("ValidateAccessToken", "valid_token").
		Return(&service.Claims{AccountID: accountID, Role: entity.RoleDoctor.String()}, nil)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, c.Get(KeyAccountID))
	assert.Equal(t, entity.RoleDoctor.String(), c.Get(KeyRole))
}

func TestAuthMiddleware_Authenticate_RejectsMissingAndInvalidTokens(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		m := NewAuthMiddleware(tokenSvc)

		c, rec := newTestContext(t)
		tokenSvc.On("ExtractTokenFromHeader", c.Request()).Return("", false)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		m := NewAuthMiddleware(tokenSvc)

		c, rec := newTestContext(t)
		tokenSvc.On("ExtractTokenFromHeader", c.Request()).Return("bad_token", true)
		tokenSvc.On("ValidateAccessToken", "bad_token").
			Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("malformed token"))

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     any
		allowed  entity.Roles
		wantCode int
	}{
		{name: "allowed role passes", role: "doctor", allowed: entity.Roles{entity.RoleDoctor}, wantCode: http.StatusOK},
		{name: "one of several allowed roles passes", role: "admin", allowed: entity.Roles{entity.RoleDoctor, entity.RoleAdmin}, wantCode: http.StatusOK},
		{name: "disallowed role is forbidden", role: "patient", allowed: entity.Roles{entity.RoleDoctor}, wantCode: http.StatusForbidden},
		{name: "missing role is forbidden", role: nil, allowed: entity.Roles{entity.RoleDoctor}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

			c, rec := newTestContext(t)
			if tt.role != nil {
				c.Set(KeyRole, tt.role)
			}

			require.NoError(t, m.RequireRole(tt.allowed...)(okHandler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
