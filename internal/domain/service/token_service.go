package service

import (
	"net/http"
	"time"

	"mediq/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the session tokens.
type Claims struct {
	AccountID uuid.UUID `json:"accountId"`
	Role      string    `json:"role,omitempty"`
	Type      string    `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an account.
	// Both are signed with distinct secrets.
	GenerateTokens(accountID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only a new access token, used when an
	// existing session is refreshed without rotating the refresh token.
	GenerateAccessToken(accountID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken checks an access token. Expired and otherwise
	// invalid tokens fail with distinct domain errors.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token the same way.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// ExtractTokenFromHeader parses an "Authorization: Bearer <token>" header.
	// It reports false when the scheme prefix is absent or malformed and never fails.
	ExtractTokenFromHeader(r *http.Request) (string, bool)

	// HashToken returns the one-way digest under which a token is persisted.
	HashToken(token string) string

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
