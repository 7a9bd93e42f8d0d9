package handlers

import (
	"context"

	"github.com/joanpuche05/fisioterapiavilassar/internal/application/contact"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
)

// ContactService is the submission pipeline the contact handler drives
type ContactService interface {
	Submit(ctx context.Context, sub contact.Submission, locale i18n.Locale, remoteIP string) (string, error)
}
