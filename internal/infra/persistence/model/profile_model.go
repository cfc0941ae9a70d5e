package model

import (
	"time"

	"mediq/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorProfileModel mirrors the 'doctor_profiles' table. AccountID references
// accounts.id (UUID). Structured sequences are stored as JSONB columns.
type DoctorProfileModel struct {
	AccountID            uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	Specialties          []string                      `gorm:"type:jsonb;serializer:json"`
	Qualifications       []entity.Qualification        `gorm:"type:jsonb;serializer:json"`
	ExperienceYears      int                           `gorm:"not null;default:0"`
	HospitalAffiliations []entity.HospitalAffiliation  `gorm:"type:jsonb;serializer:json"`
	Languages            []string                      `gorm:"type:jsonb;serializer:json"`
	ConsultationFee      entity.ConsultationFee        `gorm:"type:jsonb;serializer:json"`
	VerificationDocs     []entity.VerificationDocument `gorm:"type:jsonb;serializer:json"`
	IsVerified           bool                          `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorProfileModel) TableName() string {
	return "doctor_profiles"
}

// PatientProfileModel mirrors the 'patient_profiles' table.
type PatientProfileModel struct {
	AccountID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	DateOfBirth      *time.Time              `gorm:"type:date"`
	Gender           string                  `gorm:"type:varchar(20)"`
	BloodGroup       string                  `gorm:"type:varchar(10)"`
	Allergies        []string                `gorm:"type:jsonb;serializer:json"`
	EmergencyContact entity.EmergencyContact `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientProfileModel) TableName() string {
	return "patient_profiles"
}
