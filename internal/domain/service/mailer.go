package service

import "context"

// Mailer defines the interface for outbound transactional email.
// Dispatch is best-effort: callers log failures but never roll back
// committed work because of them.
type Mailer interface {
	// SendVerificationEmail sends the email-verification message containing
	// the verification URL with the raw (pre-digest) token embedded.
	SendVerificationEmail(ctx context.Context, to, name, verificationURL string) error
}
