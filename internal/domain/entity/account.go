// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the authentication identity record of the system. It carries
// the credentials and verification state shared by every role; the
// role-specific medical data lives in the corresponding profile entity.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	FirstName    string    // The account holder's given name.
	LastName     string    // The account holder's family name.
	Email        string    // The primary contact email, unique across all accounts regardless of role.
	Phone        string    // Contact phone number.
	PasswordHash string    // Stores the bcrypt-hashed password.
	Role         Role      // The account role: patient, doctor or admin.

	IsActive        bool // Deactivated accounts fail login with an explicit error.
	IsEmailVerified bool // Set to true once the email verification token is redeemed.

	// VerificationTokenDigest holds the SHA-256 digest of the raw email
	// verification token. The raw token is only ever embedded in the
	// verification URL sent by mail and is never persisted.
	VerificationTokenDigest    string
	VerificationTokenExpiresAt *time.Time

	// RefreshTokenHash stores the SHA-256 hash of the current refresh token.
	// A login or registration replaces it, ending the previous session.
	RefreshTokenHash string

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the account holder's display name.
func (a *Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}

	return a.FirstName + " " + a.LastName
}
