// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mediq/internal/domain/entity"
	domainerrors "mediq/internal/domain/errors"
	"mediq/internal/domain/repository"
	"mediq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByVerificationTokenDigest retrieves the account holding the given digest.
func (repo *accountRepository) FindByVerificationTokenDigest(ctx context.Context, digest string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("verification_token_digest = ?", digest).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by verification token digest")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors. The unique constraint
		// on email is the authoritative arbiter for concurrent registrations.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                         data.ID,
		FirstName:                  data.FirstName,
		LastName:                   data.LastName,
		Email:                      data.Email,
		Phone:                      data.Phone,
		PasswordHash:               data.PasswordHash,
		Role:                       entity.Role(data.Role),
		IsActive:                   data.IsActive,
		IsEmailVerified:            data.IsEmailVerified,
		VerificationTokenDigest:    data.VerificationTokenDigest,
		VerificationTokenExpiresAt: data.VerificationTokenExpiresAt,
		RefreshTokenHash:           data.RefreshTokenHash,
		LastLoginAt:                data.LastLoginAt,
		CreatedAt:                  data.CreatedAt,
		UpdatedAt:                  data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                         data.ID,
		FirstName:                  data.FirstName,
		LastName:                   data.LastName,
		Email:                      data.Email,
		Phone:                      data.Phone,
		PasswordHash:               data.PasswordHash,
		Role:                       data.Role.String(),
		IsActive:                   data.IsActive,
		IsEmailVerified:            data.IsEmailVerified,
		VerificationTokenDigest:    data.VerificationTokenDigest,
		VerificationTokenExpiresAt: data.VerificationTokenExpiresAt,
		RefreshTokenHash:           data.RefreshTokenHash,
		LastLoginAt:                data.LastLoginAt,
		// CreatedAt must round-trip: Update uses Save, which writes every
		// column, and a zero value here would erase the original timestamp.
		CreatedAt: data.CreatedAt,
	}
}
