package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mediq/config"
	"mediq/internal/domain/entity"
	domainerrors "mediq/internal/domain/errors"
	"mediq/internal/domain/repository"
	"mediq/internal/domain/service"
	mockRepo "mediq/internal/mocks/repository"
	mockSvc "mediq/internal/mocks/service"
	"mediq/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	profileRepo  *mockRepo.MockProfileRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{VerificationTokenTTL: 24 * time.Hour},
	}
	cfg.Client.BaseURL = "https://app.example.com"

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config:       cfg,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func doctorRegistrationInput() usecase.RegisterDoctorInput {
	return usecase.RegisterDoctorInput{
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           "asha.rao@example.com",
		Phone:           "+911234567890",
		Password:        "Password123!",
		Specialties:     "Cardiology, Neurology",
		Qualifications:  "MBBS, MD",
		Experience:      "10+ years",
		Languages:       []any{"English", "Hindi"},
		ConsultationFee: map[string]any{"inPerson": float64(500)},
	}
}

func TestAccountService_RegisterDoctor_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := doctorRegistrationInput()
	accountID := uuid.New()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.tokenService.On("HashToken", mock.AnythingOfType("string")).Return("token_digest")
	fx.tokenService.On("GenerateTokens", accountID, entity.RoleDoctor).Return("access_token", "refresh_token", nil)

	mailSent := make(chan struct{})
	fx.mailer.On("SendVerificationEmail", mock.Anything, input.Email, "Asha Rao", mock.MatchedBy(func(url string) bool {
		return len(url) > 0
	})).Run(func(args mock.Arguments) {
		close(mailSent)
	}).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)

			factory.On("AccountRepo").Return(accountRepo)
			factory.On("ProfileRepo").Return(profileRepo)

			accountRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
			accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Account).ID = accountID
				}).
				Return(nil)
			profileRepo.On("CreateDoctorProfile", ctx, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
				return p.AccountID == accountID &&
					len(p.Specialties) == 2 &&
					len(p.Qualifications) == 2 &&
					p.ExperienceYears == 10 &&
					p.ConsultationFee == entity.ConsultationFee{InPerson: 500, Video: 500, Phone: 500} &&
					!p.IsVerified
			})).Return(nil)
			accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.RegisterDoctor(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, entity.RoleDoctor, output.Account.Role)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, "token_digest", output.Account.VerificationTokenDigest)
	require.NotNil(t, output.Account.VerificationTokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *output.Account.VerificationTokenExpiresAt, time.Minute)

	select {
	case <-mailSent:
	case <-time.After(2 * time.Second):
		t.Fatal("verification email was never dispatched")
	}
}

func TestAccountService_RegisterDoctor_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := doctorRegistrationInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.tokenService.On("HashToken", mock.AnythingOfType("string")).Return("token_digest")

	duplicateErr := domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			factory.On("AccountRepo").Return(accountRepo)
			accountRepo.On("FindByEmail", ctx, input.Email).Return(&entity.Account{Email: input.Email}, nil)

			err := fn(factory)
			assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
		}).
		Return(duplicateErr)

	output, err := fx.service.RegisterDoctor(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAccountService_RegisterDoctor_RollbackOnProfileFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := doctorRegistrationInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.tokenService.On("HashToken", mock.AnythingOfType("string")).Return("token_digest")

	profileFailure := errors.New("connection reset during insert")

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)

			factory.On("AccountRepo").Return(accountRepo)
			factory.On("ProfileRepo").Return(profileRepo)

			accountRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
			accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Account).ID = uuid.New()
				}).
				Return(nil)
			// Failure injected between account creation and profile creation:
			// the transaction must surface the error so nothing commits. No
			// Update expectation exists, so reaching the session-persistence
			// step would fail the test.
			profileRepo.On("CreateDoctorProfile", ctx, mock.AnythingOfType("*entity.DoctorProfile")).
				Return(profileFailure)

			err := fn(factory)
			assert.ErrorIs(t, err, profileFailure)
		}).
		Return(profileFailure)

	output, err := fx.service.RegisterDoctor(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "asha.rao@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleDoctor,
		IsActive:     true,
	}

	fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.profileRepo.On("FindDoctorProfileByAccountID", ctx, accountID).
		Return(&entity.DoctorProfile{AccountID: accountID}, nil)
	fx.tokenService.On("GenerateTokens", accountID, entity.RoleDoctor).Return("access_token", "refresh_token", nil)
	fx.tokenService.On("HashToken", "refresh_token").Return("refresh_digest")
	fx.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.LastLoginAt != nil && a.RefreshTokenHash == "refresh_digest"
	})).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
		Role:     entity.RoleDoctor,
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	require.NotNil(t, output.DoctorProfile)
	assert.Equal(t, accountID, output.DoctorProfile.AccountID)
}

func TestAccountService_Login_MixedCaseEmailMatchesStoredAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "asha.rao@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleDoctor,
		IsActive:     true,
	}

	// The lookup must receive the canonical form registration stored, not the
	// verbatim mixed-case address the user typed.
	fx.accountRepo.On("FindByEmail", ctx, "asha.rao@example.com").Return(account, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.profileRepo.On("FindDoctorProfileByAccountID", ctx, accountID).
		Return(&entity.DoctorProfile{AccountID: accountID}, nil)
	fx.tokenService.On("GenerateTokens", accountID, entity.RoleDoctor).Return("access_token", "refresh_token", nil)
	fx.tokenService.On("HashToken", "refresh_token").Return("refresh_digest")
	fx.accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "  Asha.Rao@Example.com ",
		Password: "Password123!",
		Role:     entity.RoleDoctor,
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "asha.rao@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleDoctor,
		IsActive:     true,
	}

	fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    account.Email,
		Password: "wrong",
		Role:     entity.RoleDoctor,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	// No Update expectation: last-login must stay untouched and no token is issued.
	assert.Nil(t, account.LastLoginAt)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
		Role:     entity.RoleDoctor,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_RoleMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "asha.rao@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RolePatient,
		IsActive:     true,
	}

	fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
		Role:     entity.RoleDoctor,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_Deactivated(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "asha.rao@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleDoctor,
		IsActive:     false,
	}

	fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
		Role:     entity.RoleDoctor,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}

func TestAccountService_Login_ProfileMissing(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "asha.rao@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleDoctor,
		IsActive:     true,
	}

	fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.profileRepo.On("FindDoctorProfileByAccountID", ctx, account.ID).
		Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
		Role:     entity.RoleDoctor,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProfileMissing)
}

func refreshClaims(accountID uuid.UUID, expiresAt time.Time) *service.Claims {
	return &service.Claims{
		AccountID: accountID,
		Role:      entity.RoleDoctor.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestAccountService_RefreshToken_EligibleWhenAccessExpired(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:               accountID,
		Role:             entity.RoleDoctor,
		IsActive:         true,
		RefreshTokenHash: "refresh_digest",
	}

	fx.tokenService.On("ValidateRefreshToken", "refresh_token").
		Return(refreshClaims(accountID, time.Now().Add(29*24*time.Hour)), nil)
	fx.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.tokenService.On("HashToken", "refresh_token").Return("refresh_digest")
	fx.tokenService.On("ValidateAccessToken", "stale_access").
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token past its expiry"))
	fx.tokenService.On("GenerateAccessToken", accountID, entity.RoleDoctor).Return("fresh_access", nil)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{
		AccessToken:  "stale_access",
		RefreshToken: "refresh_token",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh_access", output.AccessToken)
}

func TestAccountService_RefreshToken_NotEligibleWhileAccessFresh(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:               accountID,
		Role:             entity.RoleDoctor,
		IsActive:         true,
		RefreshTokenHash: "refresh_digest",
	}

	fx.tokenService.On("ValidateRefreshToken", "refresh_token").
		Return(refreshClaims(accountID, time.Now().Add(29*24*time.Hour)), nil)
	fx.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.tokenService.On("HashToken", "refresh_token").Return("refresh_digest")
	fx.tokenService.On("ValidateAccessToken", "fresh_access").
		Return(refreshClaims(accountID, time.Now().Add(48*time.Hour)), nil)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{
		AccessToken:  "fresh_access",
		RefreshToken: "refresh_token",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotEligible)
}

func TestAccountService_RefreshToken_SupersededRefreshToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:               accountID,
		Role:             entity.RoleDoctor,
		IsActive:         true,
		RefreshTokenHash: "current_digest",
	}

	fx.tokenService.On("ValidateRefreshToken", "old_refresh_token").
		Return(refreshClaims(accountID, time.Now().Add(24*time.Hour)), nil)
	fx.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.tokenService.On("HashToken", "old_refresh_token").Return("old_digest")

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{
		AccessToken:  "stale_access",
		RefreshToken: "old_refresh_token",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)
	account := &entity.Account{
		ID:                         uuid.New(),
		VerificationTokenDigest:    "digest",
		VerificationTokenExpiresAt: &expiresAt,
	}

	fx.tokenService.On("HashToken", "raw_token").Return("digest")
	fx.accountRepo.On("FindByVerificationTokenDigest", ctx, "digest").Return(account, nil)
	fx.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.IsEmailVerified && a.VerificationTokenDigest == "" && a.VerificationTokenExpiresAt == nil
	})).Return(nil)

	require.NoError(t, fx.service.VerifyEmail(ctx, "raw_token"))
}

func TestAccountService_VerifyEmail_Expired(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	expiresAt := time.Now().Add(-time.Hour)
	account := &entity.Account{
		ID:                         uuid.New(),
		VerificationTokenDigest:    "digest",
		VerificationTokenExpiresAt: &expiresAt,
	}

	fx.tokenService.On("HashToken", "raw_token").Return("digest")
	fx.accountRepo.On("FindByVerificationTokenDigest", ctx, "digest").Return(account, nil)

	err := fx.service.VerifyEmail(ctx, "raw_token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.False(t, account.IsEmailVerified)
}

func TestAccountService_VerifyEmail_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenService.On("HashToken", "bogus").Return("bogus_digest")
	fx.accountRepo.On("FindByVerificationTokenDigest", ctx, "bogus_digest").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.VerifyEmail(ctx, "bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccountService_Logout_ClearsRefreshToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:               uuid.New(),
		RefreshTokenHash: "refresh_digest",
	}

	fx.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fx.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.RefreshTokenHash == ""
	})).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, account.ID))
}

func TestAccountService_UpdateDoctorProfile_ResetsVerification(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Role: entity.RoleDoctor, IsActive: true}
	profile := &entity.DoctorProfile{
		AccountID:   accountID,
		Specialties: []string{"Cardiology"},
		IsVerified:  true,
	}

	fx.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.profileRepo.On("FindDoctorProfileByAccountID", ctx, accountID).Return(profile, nil)
	fx.profileRepo.On("UpdateDoctorProfile", ctx, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
		return !p.IsVerified && len(p.Qualifications) == 1
	})).Return(nil)

	updated, err := fx.service.UpdateDoctorProfile(ctx, usecase.UpdateDoctorProfileInput{
		AccountID:      accountID,
		Qualifications: "DM Cardiology",
	})

	require.NoError(t, err)
	assert.False(t, updated.IsVerified)
}

func TestAccountService_UpdateDoctorProfile_FeeOnlyEditKeepsVerification(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Role: entity.RoleDoctor, IsActive: true}
	profile := &entity.DoctorProfile{AccountID: accountID, IsVerified: true}

	fx.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.profileRepo.On("FindDoctorProfileByAccountID", ctx, accountID).Return(profile, nil)
	fx.profileRepo.On("UpdateDoctorProfile", ctx, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
		return p.IsVerified && p.ConsultationFee == entity.ConsultationFee{InPerson: 300, Video: 300, Phone: 300}
	})).Return(nil)

	updated, err := fx.service.UpdateDoctorProfile(ctx, usecase.UpdateDoctorProfileInput{
		AccountID:       accountID,
		ConsultationFee: float64(300),
	})

	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
}

func TestAccountService_UpdateDoctorProfile_NonDoctorForbidden(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Role: entity.RolePatient, IsActive: true}

	fx.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)

	updated, err := fx.service.UpdateDoctorProfile(ctx, usecase.UpdateDoctorProfileInput{AccountID: accountID})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
