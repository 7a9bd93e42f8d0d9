// Package content loads the per-locale static page bodies (the privacy
// policy) from Markdown at startup.
package content

import (
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/services/markdown"
)

// PrivacyContent holds the rendered privacy-policy body per locale. Rendered
// HTML is sanitized at load time; the result is safe to inject unescaped.
type PrivacyContent struct {
	bodies        map[i18n.Locale]htmltemplate.HTML
	defaultLocale i18n.Locale
}

// LoadPrivacy reads <dir>/privacy.<locale>.md for every supported locale.
// Locales without a usable file fall back to the default locale's body; the
// default locale's file is required.
func LoadPrivacy(dir string, md markdown.Service, defaultLocale i18n.Locale, log logger.Interface) (*PrivacyContent, error) {
	defaultBody, err := renderFile(dir, defaultLocale, md)
	if err != nil {
		return nil, fmt.Errorf("privacy content for default locale %q unusable: %w", defaultLocale, err)
	}

	bodies := make(map[i18n.Locale]htmltemplate.HTML, len(i18n.SupportedLocales()))
	bodies[defaultLocale] = defaultBody

	for _, locale := range i18n.SupportedLocales() {
		if locale == defaultLocale {
			continue
		}
		body, err := renderFile(dir, locale, md)
		if err != nil {
			log.Warnw("privacy content unusable, falling back to default locale",
				"locale", locale,
				"error", err,
			)
			bodies[locale] = defaultBody
			continue
		}
		bodies[locale] = body
	}

	return &PrivacyContent{
		bodies:        bodies,
		defaultLocale: defaultLocale,
	}, nil
}

func renderFile(dir string, locale i18n.Locale, md markdown.Service) (htmltemplate.HTML, error) {
	path := filepath.Join(dir, fmt.Sprintf("privacy.%s.md", locale))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	rendered, err := md.ToHTMLSanitized(string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return htmltemplate.HTML(rendered), nil
}

// Body returns the rendered privacy body for a locale
func (p *PrivacyContent) Body(locale i18n.Locale) htmltemplate.HTML {
	if body, ok := p.bodies[locale]; ok {
		return body
	}
	return p.bodies[p.defaultLocale]
}
