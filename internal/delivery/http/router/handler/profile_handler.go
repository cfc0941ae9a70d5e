package handler

import (
	"log/slog"
	"net/http"

	"mediq/internal/delivery/http/response"
	"mediq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.AccountUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateDoctorProfileRequest struct {
	Specialties          any `json:"specialties"`
	Qualifications       any `json:"qualifications"`
	Experience           any `json:"experience"`
	HospitalAffiliations any `json:"hospitalAffiliations"`
	Languages            any `json:"languages"`
	ConsultationFee      any `json:"consultationFee"`
}

// GetMe returns the authenticated account with its role-specific profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{"account": toAccountView(output.Account)}
	if output.DoctorProfile != nil {
		body["doctorProfile"] = toDoctorProfileView(output.DoctorProfile)
	}
	if output.PatientProfile != nil {
		body["patientProfile"] = toPatientProfileView(output.PatientProfile)
	}

	return response.Success(c, http.StatusOK, body, "Profile retrieved successfully")
}

// UpdateDoctorProfile applies edits to the authenticated doctor's profile.
// Editing credential-relevant fields resets the verification status.
func (h *ProfileHandler) UpdateDoctorProfile(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	var req updateDoctorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateDoctorProfile(c.Request().Context(), usecase.UpdateDoctorProfileInput{
		AccountID:            accountID,
		Specialties:          req.Specialties,
		Qualifications:       req.Qualifications,
		Experience:           req.Experience,
		HospitalAffiliations: req.HospitalAffiliations,
		Languages:            req.Languages,
		ConsultationFee:      req.ConsultationFee,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDoctorProfileView(profile), "Profile updated successfully")
}
