// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mediq/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDoctorInput defines the data required to register a new doctor.
// The profile fields are declared as `any` because clients submit them in
// several shapes (comma-separated string, array of strings, array of
// objects, single object); the registration flow canonicalizes them before
// anything is persisted.
type RegisterDoctorInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string

	Specialties          any
	Qualifications       any
	Experience           any
	HospitalAffiliations any
	Languages            any
	ConsultationFee      any
}

// RegisterPatientInput defines the data required to register a new patient.
type RegisterPatientInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string

	DateOfBirth      string
	Gender           string
	BloodGroup       string
	Allergies        any
	EmergencyContact *entity.EmergencyContact
}

// LoginInput defines the data required for an account to log in. Role is
// fixed per entry point: the doctor login endpoint expects a doctor account
// and rejects everything else.
type LoginInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// RefreshTokenInput carries both tokens involved in a refresh: the access
// token whose remaining validity decides eligibility, and the refresh token
// proving the session is still valid.
type RefreshTokenInput struct {
	AccessToken  string
	RefreshToken string
}

// UpdateDoctorProfileInput carries the editable profile fields. The
// heterogeneous fields follow the same shape rules as registration.
type UpdateDoctorProfileInput struct {
	AccountID uuid.UUID

	Specialties          any
	Qualifications       any
	Experience           any
	HospitalAffiliations any
	Languages            any
	ConsultationFee      any
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and its session tokens.
type RegisterOutput struct {
	Account      *entity.Account
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login, plus
// the role-specific profile summary.
type LoginOutput struct {
	Account        *entity.Account
	DoctorProfile  *entity.DoctorProfile
	PatientProfile *entity.PatientProfile
	AccessToken    string
	RefreshToken   string
}

// RefreshTokenOutput returns the re-issued access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// ProfileOutput bundles an account with its role-specific profile. Exactly
// one of DoctorProfile and PatientProfile is set, matching the account role.
type ProfileOutput struct {
	Account        *entity.Account
	DoctorProfile  *entity.DoctorProfile
	PatientProfile *entity.PatientProfile
}

// AccountUsecase defines the interface for registration and authentication
// operations. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	RegisterDoctor(ctx context.Context, input RegisterDoctorInput) (*RegisterOutput, error)
	RegisterPatient(ctx context.Context, input RegisterPatientInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, accountID uuid.UUID) error
	VerifyEmail(ctx context.Context, rawToken string) error
	GetProfile(ctx context.Context, accountID uuid.UUID) (*ProfileOutput, error)
	UpdateDoctorProfile(ctx context.Context, input UpdateDoctorProfileInput) (*entity.DoctorProfile, error)
}
