// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationChannel identifies how a consultation is delivered.
type ConsultationChannel string

const (
	// ChannelInPerson is a physical visit at the doctor's practice.
	ChannelInPerson ConsultationChannel = "inPerson"
	// ChannelVideo is a video call consultation.
	ChannelVideo ConsultationChannel = "video"
	// ChannelPhone is a plain phone call consultation.
	ChannelPhone ConsultationChannel = "phone"
)

// Qualification is a single academic or professional credential of a doctor.
type Qualification struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// HospitalAffiliation records a hospital the doctor practices or practiced at.
type HospitalAffiliation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Current bool   `json:"current"`
}

// ConsultationFee maps every consultation channel to its amount.
// Amounts are whole currency units; a zero value means the channel is free
// or not yet priced.
type ConsultationFee struct {
	InPerson int `json:"inPerson"`
	Video    int `json:"video"`
	Phone    int `json:"phone"`
}

// VerificationDocument is a credential document uploaded for manual review.
type VerificationDocument struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Verified bool   `json:"verified"`
}

// DoctorProfile holds the medical-practice data of a doctor account.
// It references the owning Account by identifier; the profile is always
// created in the same transaction as the account so a doctor account
// without a profile is never observable.
type DoctorProfile struct {
	AccountID            uuid.UUID
	Specialties          []string
	Qualifications       []Qualification
	ExperienceYears      int
	HospitalAffiliations []HospitalAffiliation
	Languages            []string
	ConsultationFee      ConsultationFee
	VerificationDocs     []VerificationDocument

	// IsVerified reflects the manual credential review. It starts false and
	// is reset to false whenever credential-relevant fields are edited.
	IsVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
