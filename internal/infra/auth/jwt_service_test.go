package auth

import (
	"net/http"
	"testing"
	"time"

	"mediq/config"
	"mediq/internal/domain/entity"
	domainerrors "mediq/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(newTestConfig("", "refresh-secret"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConfigurationMissing)

	_, err = NewJWTService(newTestConfig("access-secret", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConfigurationMissing)
}

func TestJWTService_GenerateAndValidateRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	accountID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(accountID, entity.RoleDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, accessClaims.AccountID)
	assert.Equal(t, entity.RoleDoctor.String(), accessClaims.Role)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, refreshClaims.AccountID)
}

func TestJWTService_TokenTypeAndSecretAreNotInterchangeable(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	_, err = svc.ValidateAccessToken(refreshToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	signer, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other-access-secret", "other-refresh-secret"))
	require.NoError(t, err)

	accessToken, _, err := signer.GenerateTokens(uuid.New(), entity.RoleDoctor)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(accessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc := &jwtService{
		accessSecret:  "access-secret",
		refreshSecret: "refresh-secret",
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	accessToken, _, err := svc.GenerateTokens(uuid.New(), entity.RoleDoctor)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_ExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "valid bearer token", header: "Bearer abc123", wantToken: "abc123", wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "wrong scheme", header: "Basic abc123", wantOK: false},
		{name: "prefix without token", header: "Bearer ", wantOK: false},
		{name: "lowercase scheme is rejected", header: "bearer abc123", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, reqErr := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, reqErr)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, ok := svc.ExtractTokenFromHeader(req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestJWTService_HashToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	digest := svc.HashToken("some-token")
	assert.Len(t, digest, 64) // hex-encoded SHA-256
	assert.Equal(t, digest, svc.HashToken("some-token"))
	assert.NotEqual(t, digest, svc.HashToken("other-token"))
	assert.NotContains(t, digest, "some-token")
}

func TestJWTService_TTLs(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, svc.AccessTokenTTL())
	assert.Equal(t, 30*24*time.Hour, svc.RefreshTokenTTL())
}
