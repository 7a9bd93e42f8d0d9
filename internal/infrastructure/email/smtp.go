package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/joanpuche05/fisioterapiavilassar/internal/shared/config"
)

// SMTPMailer delivers notification emails through a configured SMTP relay.
// The dialer is built once at startup; each send opens its own connection.
type SMTPMailer struct {
	config sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTP mailer from config
func NewSMTPMailer(config sharedConfig.EmailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	return &SMTPMailer{
		config: config,
		dialer: dialer,
	}
}

// Send delivers an HTML email. replyTo is set so the practice can answer the
// visitor directly from their mail client; it may be empty.
func (m *SMTPMailer) Send(to []string, replyTo, subject, htmlBody string) error {
	if m.config.SMTPHost == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.FromAddress)
	msg.SetHeader("To", to...)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
