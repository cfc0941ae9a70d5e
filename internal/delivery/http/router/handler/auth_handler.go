// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mediq/internal/delivery/http/response"
	"mediq/internal/domain/entity"
	"mediq/internal/domain/service"
	"mediq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accessTokenCookie is the cookie carrying the access token alongside the
// JSON body. It is HTTP-only and same-site strict.
const accessTokenCookie = "accessToken"

// AuthHandler holds dependencies for registration and authentication handlers.
type AuthHandler struct {
	uc       usecase.AccountUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type registerDoctorRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`

	// These fields accept a comma-separated string, an array of strings, an
	// array of objects, or a single object; the use case canonicalizes them.
	Specialties          any `json:"specialties"`
	Qualifications       any `json:"qualifications"`
	Experience           any `json:"experience"`
	HospitalAffiliations any `json:"hospitalAffiliations"`
	Languages            any `json:"languages"`
	ConsultationFee      any `json:"consultationFee"`
}

type registerPatientRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`

	DateOfBirth      string                   `json:"dateOfBirth"`
	Gender           string                   `json:"gender"`
	BloodGroup       string                   `json:"bloodGroup"`
	Allergies        any                      `json:"allergies"`
	EmergencyContact *entity.EmergencyContact `json:"emergencyContact"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RegisterDoctor handles the doctor registration request.
func (h *AuthHandler) RegisterDoctor(c echo.Context) error {
	var req registerDoctorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterDoctor(c.Request().Context(), usecase.RegisterDoctorInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Password:             req.Password,
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

	h.setAccessTokenCookie(c, output.AccessToken)

	return response.Success(c, http.StatusCreated, registrationResponse(output), "Doctor registered successfully")
}

// RegisterPatient handles the patient registration request.
func (h *AuthHandler) RegisterPatient(c echo.Context) error {
	var req registerPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterPatient(c.Request().Context(), usecase.RegisterPatientInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Password:         req.Password,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		BloodGroup:       req.BloodGroup,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAccessTokenCookie(c, output.AccessToken)

	return response.Success(c, http.StatusCreated, registrationResponse(output), "Patient registered successfully")
}

// LoginDoctor handles login through the doctor entry point.
func (h *AuthHandler) LoginDoctor(c echo.Context) error {
	return h.login(c, entity.RoleDoctor)
}

// LoginPatient handles login through the patient entry point.
func (h *AuthHandler) LoginPatient(c echo.Context) error {
	return h.login(c, entity.RolePatient)
}

func (h *AuthHandler) login(c echo.Context, role entity.Role) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAccessTokenCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, loginResponse(output), "Login successful")
}

// RefreshToken re-issues an access token. The stale access token travels in
// the Authorization header, the refresh token in the body.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	accessToken, _ := h.tokenSvc.ExtractTokenFromHeader(c.Request())

	output, err := h.uc.RefreshToken(c.Request().Context(), usecase.RefreshTokenInput{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAccessTokenCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": output.AccessToken}, "Token refreshed successfully")
}

// Logout ends the current session and clears the access token cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	h.clearAccessTokenCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// VerifyEmail consumes the raw token from the emailed verification URL.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	rawToken := c.Param("token")

	if err := h.uc.VerifyEmail(c.Request().Context(), rawToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Email verified"}, "Email verified successfully")
}

func (h *AuthHandler) setAccessTokenCookie(c echo.Context, accessToken string) {
	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.AccessTokenTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearAccessTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
