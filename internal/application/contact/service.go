// Package contact implements the contact-form submission pipeline: CAPTCHA
// verification, required-field validation, email composition and delivery.
package contact

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/errors"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
)

// English fallbacks for when a translation key is absent from the tree.
const (
	defaultCaptchaRequired = "Please complete the CAPTCHA verification."
	defaultCaptchaFailed   = "CAPTCHA verification failed. Please try again."
	defaultMissingFields   = "Please fill in all required fields."
	defaultServerError     = "Could not send your message. Please try again later."
	defaultSuccess         = "Thank you! Your message has been sent."
	defaultEmailSubject    = "New contact form message"
)

// CaptchaVerifier checks a client-side challenge token
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// Mailer delivers a composed notification email
type Mailer interface {
	Send(to []string, replyTo, subject, htmlBody string) error
}

// Service orchestrates one submission from parsed form to delivered email.
// Every rejection carries a localized message and the HTTP status the
// handler should answer with.
type Service struct {
	verifier  CaptchaVerifier
	mailer    Mailer
	composer  *Composer
	store     *i18n.Store
	validate  *validator.Validate
	recipient string
	logger    logger.Interface
}

// NewService creates the submission orchestrator
func NewService(
	verifier CaptchaVerifier,
	mailer Mailer,
	composer *Composer,
	store *i18n.Store,
	recipient string,
	log logger.Interface,
) *Service {
	return &Service{
		verifier:  verifier,
		mailer:    mailer,
		composer:  composer,
		store:     store,
		validate:  validator.New(),
		recipient: recipient,
		logger:    log,
	}
}

// Submit runs the pipeline for one submission. On success it returns the
// localized confirmation message; on rejection it returns an AppError whose
// message is already localized for the visitor. Nothing is retried.
func (s *Service) Submit(ctx context.Context, sub Submission, locale i18n.Locale, remoteIP string) (string, error) {
	token := strings.TrimSpace(sub.CaptchaToken)
	if token == "" {
		return "", errors.NewCaptchaRequiredError(
			s.store.Text(locale, "form.captchaRequired", defaultCaptchaRequired))
	}

	valid, err := s.verifier.Verify(ctx, token, remoteIP)
	if err != nil || !valid {
		s.logger.Warnw("captcha verification rejected",
			"locale", locale,
			"remote_ip", remoteIP,
			"error", err,
		)
		return "", errors.NewCaptchaFailedError(
			s.store.Text(locale, "form.captchaFailed", defaultCaptchaFailed))
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Message = strings.TrimSpace(sub.Message)

	required := requiredFields{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	}
	if err := s.validate.Struct(required); err != nil {
		return "", errors.NewMissingFieldsError(
			s.store.Text(locale, "form.error", defaultMissingFields),
			err.Error())
	}

	body, err := s.composer.Compose(sub, locale)
	if err != nil {
		s.logger.Errorw("failed to compose notification email", "error", err)
		return "", errors.NewServerError(
			s.store.Text(locale, "form.errorServer", defaultServerError))
	}

	subject := s.store.Text(locale, "form.emailSubject", defaultEmailSubject)
	if err := s.mailer.Send([]string{s.recipient}, sub.Email, subject, body); err != nil {
		s.logger.Errorw("failed to deliver notification email",
			"recipient", s.recipient,
			"error", err,
		)
		return "", errors.NewServerError(
			s.store.Text(locale, "form.errorServer", defaultServerError))
	}

	s.logger.Infow("contact submission delivered",
		"locale", locale,
		"recipient", s.recipient,
	)

	return s.store.Text(locale, "form.success", defaultSuccess), nil
}
