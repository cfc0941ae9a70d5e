// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is the person to notify in a medical emergency.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PatientProfile holds the medical data of a patient account. It references
// the owning Account by identifier and is created in the same transaction.
type PatientProfile struct {
	AccountID        uuid.UUID
	DateOfBirth      *time.Time
	Gender           string
	BloodGroup       string
	Allergies        []string
	EmergencyContact EmergencyContact

	CreatedAt time.Time
	UpdatedAt time.Time
}
