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

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// CreateDoctorProfile persists a new doctor profile.
func (repo *profileRepository) CreateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error {
	profileM := fromDoctorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("doctor profile already exists for this account")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create doctor profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindDoctorProfileByAccountID retrieves the doctor profile of an account.
func (repo *profileRepository) FindDoctorProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.DoctorProfile, error) {
	var profileM model.DoctorProfileModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor profile")
	}

	return toDoctorProfileDomain(&profileM), nil
}

// UpdateDoctorProfile modifies an existing doctor profile.
func (repo *profileRepository) UpdateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error {
	profileM := fromDoctorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update doctor profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// CreatePatientProfile persists a new patient profile.
func (repo *profileRepository) CreatePatientProfile(ctx context.Context, profile *entity.PatientProfile) error {
	profileM := fromPatientProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("patient profile already exists for this account")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindPatientProfileByAccountID retrieves the patient profile of an account.
func (repo *profileRepository) FindPatientProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PatientProfile, error) {
	var profileM model.PatientProfileModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient profile")
	}

	return toPatientProfileDomain(&profileM), nil
}

// --- Mapper Functions ---

func toDoctorProfileDomain(data *model.DoctorProfileModel) *entity.DoctorProfile {
	if data == nil {
		return nil
	}

	return &entity.DoctorProfile{
		AccountID:            data.AccountID,
		Specialties:          data.Specialties,
		Qualifications:       data.Qualifications,
		ExperienceYears:      data.ExperienceYears,
		HospitalAffiliations: data.HospitalAffiliations,
		Languages:            data.Languages,
		ConsultationFee:      data.ConsultationFee,
		VerificationDocs:     data.VerificationDocs,
		IsVerified:           data.IsVerified,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromDoctorProfileDomain(data *entity.DoctorProfile) *model.DoctorProfileModel {
	if data == nil {
		return nil
	}

	return &model.DoctorProfileModel{
		AccountID:            data.AccountID,
		Specialties:          data.Specialties,
		Qualifications:       data.Qualifications,
		ExperienceYears:      data.ExperienceYears,
		HospitalAffiliations: data.HospitalAffiliations,
		Languages:            data.Languages,
		ConsultationFee:      data.ConsultationFee,
		VerificationDocs:     data.VerificationDocs,
		IsVerified:           data.IsVerified,
		// Save writes every column, so the original timestamp must survive
		// the round-trip through the model.
		CreatedAt: data.CreatedAt,
	}
}

func toPatientProfileDomain(data *model.PatientProfileModel) *entity.PatientProfile {
	if data == nil {
		return nil
	}

	return &entity.PatientProfile{
		AccountID:        data.AccountID,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		BloodGroup:       data.BloodGroup,
		Allergies:        data.Allergies,
		EmergencyContact: data.EmergencyContact,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPatientProfileDomain(data *entity.PatientProfile) *model.PatientProfileModel {
	if data == nil {
		return nil
	}

	return &model.PatientProfileModel{
		AccountID:        data.AccountID,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		BloodGroup:       data.BloodGroup,
		Allergies:        data.Allergies,
		EmergencyContact: data.EmergencyContact,
		CreatedAt:        data.CreatedAt,
	}
}
