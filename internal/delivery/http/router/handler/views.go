package handler

import (
	"time"

	httpmiddleware "mediq/internal/delivery/http/middleware"
	"mediq/internal/domain/entity"
	domainerrors "mediq/internal/domain/errors"
	"mediq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// accountView is the public representation of an account. Password hash and
// token digests never leave the server.
type accountView struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"isActive"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type doctorProfileView struct {
	AccountID            uuid.UUID                     `json:"accountId"`
	Specialties          []string                      `json:"specialties"`
	Qualifications       []entity.Qualification        `json:"qualifications"`
	ExperienceYears      int                           `json:"experienceYears"`
	HospitalAffiliations []entity.HospitalAffiliation  `json:"hospitalAffiliations"`
	Languages            []string                      `json:"languages"`
	ConsultationFee      entity.ConsultationFee        `json:"consultationFee"`
	VerificationDocs     []entity.VerificationDocument `json:"verificationDocs,omitempty"`
	IsVerified           bool                          `json:"isVerified"`
}

type patientProfileView struct {
	AccountID        uuid.UUID               `json:"accountId"`
	DateOfBirth      *time.Time              `json:"dateOfBirth,omitempty"`
	Gender           string                  `json:"gender,omitempty"`
	BloodGroup       string                  `json:"bloodGroup,omitempty"`
	Allergies        []string                `json:"allergies"`
	EmergencyContact entity.EmergencyContact `json:"emergencyContact"`
}

func toAccountView(account *entity.Account) *accountView {
	if account == nil {
		return nil
	}

	return &accountView{
		ID:              account.ID,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Email:           account.Email,
		Phone:           account.Phone,
		Role:            account.Role.String(),
		IsActive:        account.IsActive,
		IsEmailVerified: account.IsEmailVerified,
		LastLoginAt:     account.LastLoginAt,
		CreatedAt:       account.CreatedAt,
	}
}

func toDoctorProfileView(profile *entity.DoctorProfile) *doctorProfileView {
	if profile == nil {
		return nil
	}

	return &doctorProfileView{
		AccountID:            profile.AccountID,
		Specialties:          profile.Specialties,
		Qualifications:       profile.Qualifications,
		ExperienceYears:      profile.ExperienceYears,
		HospitalAffiliations: profile.HospitalAffiliations,
		Languages:            profile.Languages,
		ConsultationFee:      profile.ConsultationFee,
		VerificationDocs:     profile.VerificationDocs,
		IsVerified:           profile.IsVerified,
	}
}

func toPatientProfileView(profile *entity.PatientProfile) *patientProfileView {
	if profile == nil {
		return nil
	}

	return &patientProfileView{
		AccountID:        profile.AccountID,
		DateOfBirth:      profile.DateOfBirth,
		Gender:           profile.Gender,
		BloodGroup:       profile.BloodGroup,
		Allergies:        profile.Allergies,
		EmergencyContact: profile.EmergencyContact,
	}
}

func registrationResponse(output *usecase.RegisterOutput) map[string]any {
	return map[string]any{
		"account":      toAccountView(output.Account),
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}
}

func loginResponse(output *usecase.LoginOutput) map[string]any {
	body := map[string]any{
		"account":      toAccountView(output.Account),
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}
	if output.DoctorProfile != nil {
		body["doctorProfile"] = toDoctorProfileView(output.DoctorProfile)
	}
	if output.PatientProfile != nil {
		body["patientProfile"] = toPatientProfileView(output.PatientProfile)
	}

	return body
}

// accountIDFromContext reads the account ID the auth middleware stored on
// the request context.
func accountIDFromContext(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get(httpmiddleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("account ID missing from token")
	}

	return accountID, nil
}
