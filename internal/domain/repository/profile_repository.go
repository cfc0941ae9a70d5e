// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mediq/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a role profile is not found for an account.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for role-specific profile persistence.
// Profiles reference their owning Account by identifier; creation always happens
// inside the same transaction as the account creation.
type ProfileRepository interface {
	// CreateDoctorProfile persists a new doctor profile.
	CreateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error

	// FindDoctorProfileByAccountID retrieves the doctor profile of an account.
	FindDoctorProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.DoctorProfile, error)

	// UpdateDoctorProfile modifies an existing doctor profile.
	UpdateDoctorProfile(ctx context.Context, profile *entity.DoctorProfile) error

	// CreatePatientProfile persists a new patient profile.
	CreatePatientProfile(ctx context.Context, profile *entity.PatientProfile) error

	// FindPatientProfileByAccountID retrieves the patient profile of an account.
	FindPatientProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PatientProfile, error)
}
