// Package mail implements the outbound email service over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"mediq/config"
	domainerrors "mediq/internal/domain/errors"
	"mediq/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends transactional mail through an SMTP relay over implicit TLS.
type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, domainerrors.ErrConfigurationMissing.WrapMessage("smtp relay must be configured")
	}

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     from,
	}, nil
}

// SendVerificationEmail sends the email-verification message.
func (m *smtpMailer) SendVerificationEmail(ctx context.Context, to, name, verificationURL string) error {
	subject := "Verify your email address"
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Please confirm your email address by opening the link below. "+
			"The link is valid for 24 hours.</p>"+
			"<p><a href=%q>%s</a></p>",
		name, verificationURL, verificationURL,
	)

	return m.send(ctx, to, subject, body)
}

// send performs the SMTP exchange. Implicit TLS is assumed (port 465 style);
// the relay's certificate must match the configured host.
func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", m.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := net.JoinHostPort(m.host, m.port)

	tlsConfig := &tls.Config{ServerName: m.host}

	dialer := &tls.Dialer{Config: tlsConfig}

	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp relay")
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return errors.Wrap(err, "smtp authentication failed")
	}

	if err := client.Mail(m.from); err != nil {
		return errors.Wrap(err, "smtp MAIL command failed")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp RCPT command failed")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA command failed")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "failed to write message body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finish message body")
	}

	return nil
}
