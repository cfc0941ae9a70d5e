// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mediq/config"
	deliverycontext "mediq/internal/delivery/context"
	"mediq/internal/domain/entity"
	domainerrors "mediq/internal/domain/errors"
	"mediq/internal/domain/repository"
	"mediq/internal/domain/service"
	"mediq/internal/usecase"
	"mediq/internal/usecase/normalize"
	"mediq/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	verificationTokenBytes = 32

	// refreshEligibilityWindow is how close to expiry an access token must
	// be before the refresh endpoint will re-issue it.
	refreshEligibilityWindow = 24 * time.Hour

	mailDispatchTimeout = 30 * time.Second
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager            repository.TransactionManager
	accountRepo          repository.AccountRepository
	profileRepo          repository.ProfileRepository
	hasher               service.PasswordHasher
	tokenService         service.TokenService
	mailer               service.Mailer
	verificationTokenTTL time.Duration
	clientBaseURL        string
	logger               *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	verificationTokenTTL := 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerificationTokenTTL > 0 {
		verificationTokenTTL = params.Config.Auth.VerificationTokenTTL
	}

	clientBaseURL := ""
	if params.Config != nil {
		clientBaseURL = params.Config.Client.BaseURL
	}

	return &accountService{
		txManager:            params.TxManager,
		accountRepo:          params.AccountRepo,
		profileRepo:          params.ProfileRepo,
		hasher:               params.Hasher,
		tokenService:         params.TokenService,
		mailer:               params.Mailer,
		verificationTokenTTL: verificationTokenTTL,
		clientBaseURL:        clientBaseURL,
		logger:               params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDoctor orchestrates the complete doctor registration process.
func (srv *accountService) RegisterDoctor(ctx context.Context, input usecase.RegisterDoctorInput) (*usecase.RegisterOutput, error) {
	account := buildNewAccount(input.FirstName, input.LastName, input.Email, input.Phone, entity.RoleDoctor)

	year := time.Now().Year()
	profile := &entity.DoctorProfile{
		Specialties:          normalize.StringList(input.Specialties),
		Qualifications:       normalize.Qualifications(input.Qualifications, year),
		ExperienceYears:      normalize.Experience(input.Experience),
		HospitalAffiliations: normalize.HospitalAffiliations(input.HospitalAffiliations),
		Languages:            normalize.StringList(input.Languages),
		ConsultationFee:      normalize.ConsultationFee(input.ConsultationFee),
		IsVerified:           false,
	}

	return srv.executeRegistration(ctx, account, input.Password,
		func(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) error {
			profile.AccountID = accountID

			return repoFactory.ProfileRepo().CreateDoctorProfile(ctx, profile)
		})
}

// RegisterPatient orchestrates the complete patient registration process.
func (srv *accountService) RegisterPatient(ctx context.Context, input usecase.RegisterPatientInput) (*usecase.RegisterOutput, error) {
	account := buildNewAccount(input.FirstName, input.LastName, input.Email, input.Phone, entity.RolePatient)

	profile := &entity.PatientProfile{
		Gender:     input.Gender,
		BloodGroup: input.BloodGroup,
		Allergies:  normalize.StringList(input.Allergies),
	}
	if input.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", input.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}
	if input.EmergencyContact != nil {
		profile.EmergencyContact = *input.EmergencyContact
	}

	return srv.executeRegistration(ctx, account, input.Password,
		func(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) error {
			profile.AccountID = accountID

			return repoFactory.ProfileRepo().CreatePatientProfile(ctx, profile)
		})
}

// executeRegistration runs the shared registration flow: duplicate check,
// account creation, profile creation, verification-token issuance and
// refresh-token persistence, all inside one transaction. The verification
// email goes out only after the transaction has committed.
func (srv *accountService) executeRegistration(
	ctx context.Context,
	account *entity.Account,
	password string,
	createProfile func(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) error,
) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", account.Role), slog.String("email", account.Email))

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", account.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	account.PasswordHash = hashedPassword

	rawVerificationToken, err := util.GenerateSecureToken(verificationTokenBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	// Only the digest is persisted; the raw token leaves the process solely
	// inside the verification email.
	expiresAt := time.Now().Add(srv.verificationTokenTTL)
	account.VerificationTokenDigest = srv.tokenService.HashToken(rawVerificationToken)
	account.VerificationTokenExpiresAt = &expiresAt

	var accessToken, refreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// The uniqueness check runs inside the transaction; the unique
		// constraint on email remains the authoritative arbiter for races.
		_, findErr := accountRepo.FindByEmail(ctx, account.Email)
		if findErr == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check for existing account")
		}

		if createErr := accountRepo.Create(ctx, account); createErr != nil {
			return errors.Wrap(createErr, "failed to create account during registration")
		}

		if profileErr := createProfile(ctx, repoFactory, account.ID); profileErr != nil {
			return errors.Wrap(profileErr, "failed to create profile during registration")
		}

		var tokenErr error
		accessToken, refreshToken, tokenErr = srv.tokenService.GenerateTokens(account.ID, account.Role)
		if tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to issue session tokens during registration")
		}

		account.RefreshTokenHash = srv.tokenService.HashToken(refreshToken)

		if updateErr := accountRepo.Update(ctx, account); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist session state during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", account.Role), slog.String("email", account.Email), slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	// Best-effort: a failed email never rolls back a committed registration.
	go srv.dispatchVerificationEmail(context.WithoutCancel(ctx), account.Email, account.FullName(), rawVerificationToken)

	srv.log(ctx).Debug("Registration completed", slog.Any("role", account.Role), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *accountService) dispatchVerificationEmail(ctx context.Context, email, name, rawToken string) {
	ctx, cancel := context.WithTimeout(ctx, mailDispatchTimeout)
	defer cancel()

	verificationURL := fmt.Sprintf("%s/verify-email/%s", strings.TrimRight(srv.clientBaseURL, "/"), rawToken)

	if err := srv.mailer.SendVerificationEmail(ctx, email, name, verificationURL); err != nil {
		srv.logger.Warn("Failed to send verification email", slog.String("email", email), slog.Any("error", err))
	}
}

// Login authenticates an account against the entry point's expected role.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	// Accounts are stored with a canonical email, so the submitted address
	// must be canonicalized the same way before the lookup.
	email := normalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no account for this email")
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	// A patient logging in through the doctor entry point is indistinguishable
	// from bad credentials to the caller.
	if account.Role != input.Role {
		srv.log(ctx).Warn("Role mismatch during login", slog.String("email", email), slog.Any("expected", input.Role), slog.Any("actual", account.Role))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("role mismatch")
	}

	if !account.IsActive {
		return nil, domainerrors.ErrAccountDeactivated.WrapMessage("account deactivated")
	}

	output := &usecase.LoginOutput{Account: account}

	switch account.Role {
	case entity.RoleDoctor:
		profile, profileErr := srv.profileRepo.FindDoctorProfileByAccountID(ctx, account.ID)
		if profileErr != nil {
			srv.log(ctx).Error("Doctor account without profile", slog.Any("accountID", account.ID), slog.Any("error", profileErr))

			return nil, domainerrors.ErrProfileMissing.WrapMessage("doctor profile lookup failed")
		}
		output.DoctorProfile = profile
	case entity.RolePatient:
		profile, profileErr := srv.profileRepo.FindPatientProfileByAccountID(ctx, account.ID)
		if profileErr != nil {
			srv.log(ctx).Error("Patient account without profile", slog.Any("accountID", account.ID), slog.Any("error", profileErr))

			return nil, domainerrors.ErrProfileMissing.WrapMessage("patient profile lookup failed")
		}
		output.PatientProfile = profile
	case entity.RoleAdmin:
		// Admin accounts have no role profile.
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session tokens during login")
	}

	now := time.Now()
	account.LastLoginAt = &now
	account.RefreshTokenHash = srv.tokenService.HashToken(refreshToken)

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist login state")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	output.AccessToken = accessToken
	output.RefreshToken = refreshToken

	return output, nil
}

// RefreshToken re-issues an access token when the current one is close
// enough to expiry. The refresh token must still verify and must match the
// digest persisted for the account.
func (srv *accountService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("no account for refresh token")
		}

		return nil, errors.Wrap(err, "failed to look up account for token refresh")
	}

	if !account.IsActive {
		return nil, domainerrors.ErrAccountDeactivated.WrapMessage("account deactivated")
	}

	// A logout or later login invalidates earlier refresh tokens by
	// replacing the persisted digest.
	if account.RefreshTokenHash == "" || srv.tokenService.HashToken(input.RefreshToken) != account.RefreshTokenHash {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh token superseded")
	}

	// An expired access token is trivially eligible; a valid one must be
	// inside the eligibility window.
	accessClaims, accessErr := srv.tokenService.ValidateAccessToken(input.AccessToken)
	if accessErr != nil && !errors.Is(accessErr, domainerrors.ErrTokenExpired) {
		return nil, accessErr
	}
	if accessErr == nil && accessClaims.ExpiresAt != nil {
		if remaining := time.Until(accessClaims.ExpiresAt.Time); remaining >= refreshEligibilityWindow {
			return nil, domainerrors.ErrTokenNotEligible.WrapMessage("access token still has sufficient validity")
		}
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-issue access token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Any("accountID", account.ID))

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout clears the persisted refresh token, ending the session server-side.
func (srv *accountService) Logout(ctx context.Context, accountID uuid.UUID) error {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account not found for logout")
		}

		return errors.Wrap(err, "failed to look up account for logout")
	}

	account.RefreshTokenHash = ""

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("Logout completed", slog.Any("accountID", accountID))

	return nil
}

// VerifyEmail consumes a raw verification token from the emailed URL.
func (srv *accountService) VerifyEmail(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return domainerrors.ErrTokenInvalid.WrapMessage("empty verification token")
	}

	digest := srv.tokenService.HashToken(rawToken)

	account, err := srv.accountRepo.FindByVerificationTokenDigest(ctx, digest)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrTokenInvalid.WrapMessage("unknown verification token")
		}

		return errors.Wrap(err, "failed to look up verification token")
	}

	if account.VerificationTokenExpiresAt == nil || time.Now().After(*account.VerificationTokenExpiresAt) {
		return domainerrors.ErrTokenExpired.WrapMessage("verification token past its expiry")
	}

	account.IsEmailVerified = true
	account.VerificationTokenDigest = ""
	account.VerificationTokenExpiresAt = nil

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to mark email as verified")
	}

	srv.log(ctx).Info("Email verified", slog.Any("accountID", account.ID))

	return nil
}

// GetProfile loads an account together with its role-specific profile.
func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*usecase.ProfileOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	output := &usecase.ProfileOutput{Account: account}

	switch account.Role {
	case entity.RoleDoctor:
		profile, profileErr := srv.profileRepo.FindDoctorProfileByAccountID(ctx, account.ID)
		if profileErr != nil {
			return nil, domainerrors.ErrProfileMissing.WrapMessage("doctor profile lookup failed")
		}
		output.DoctorProfile = profile
	case entity.RolePatient:
		profile, profileErr := srv.profileRepo.FindPatientProfileByAccountID(ctx, account.ID)
		if profileErr != nil {
			return nil, domainerrors.ErrProfileMissing.WrapMessage("patient profile lookup failed")
		}
		output.PatientProfile = profile
	case entity.RoleAdmin:
	}

	return output, nil
}

// UpdateDoctorProfile applies the submitted profile edits. Editing any
// credential-relevant field resets the manual verification status.
func (srv *accountService) UpdateDoctorProfile(ctx context.Context, input usecase.UpdateDoctorProfileInput) (*entity.DoctorProfile, error) {
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if account.Role != entity.RoleDoctor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only doctor accounts carry a doctor profile")
	}

	profile, err := srv.profileRepo.FindDoctorProfileByAccountID(ctx, account.ID)
	if err != nil {
		return nil, domainerrors.ErrProfileMissing.WrapMessage("doctor profile lookup failed")
	}

	credentialsEdited := false
	year := time.Now().Year()

	if input.Specialties != nil {
		profile.Specialties = normalize.StringList(input.Specialties)
		credentialsEdited = true
	}
	if input.Qualifications != nil {
		profile.Qualifications = normalize.Qualifications(input.Qualifications, year)
		credentialsEdited = true
	}
	if input.Experience != nil {
		profile.ExperienceYears = normalize.Experience(input.Experience)
		credentialsEdited = true
	}
	if input.HospitalAffiliations != nil {
		profile.HospitalAffiliations = normalize.HospitalAffiliations(input.HospitalAffiliations)
		credentialsEdited = true
	}
	if input.Languages != nil {
		profile.Languages = normalize.StringList(input.Languages)
	}
	if input.ConsultationFee != nil {
		profile.ConsultationFee = normalize.ConsultationFee(input.ConsultationFee)
	}

	if credentialsEdited {
		profile.IsVerified = false
	}

	if err := srv.profileRepo.UpdateDoctorProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update doctor profile")
	}

	srv.log(ctx).Info("Doctor profile updated", slog.Any("accountID", account.ID), slog.Bool("reverificationRequired", credentialsEdited))

	return profile, nil
}

// buildNewAccount assembles a fresh, active, unverified account entity.
func buildNewAccount(firstName, lastName, email, phone string, role entity.Role) *entity.Account {
	return &entity.Account{
		FirstName:       strings.TrimSpace(firstName),
		LastName:        strings.TrimSpace(lastName),
		Email:           normalizeEmail(email),
		Phone:           strings.TrimSpace(phone),
		Role:            role,
		IsActive:        true,
		IsEmailVerified: false,
	}
}

// normalizeEmail canonicalizes an email address so registration and login
// agree on the stored form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
