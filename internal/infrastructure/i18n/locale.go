package i18n

import "strings"

// Locale represents a supported site language
type Locale string

const (
	CA Locale = "ca"
	ES Locale = "es"
)

// SupportedLocales lists the locales the site serves, default first.
func SupportedLocales() []Locale {
	return []Locale{CA, ES}
}

// ParseLocale parses a stored locale string, falling back to def
func ParseLocale(s string, def Locale) Locale {
	switch Locale(s) {
	case CA:
		return CA
	case ES:
		return ES
	}
	return def
}

// Alternate returns the other supported locale, for the language switcher
func (l Locale) Alternate() Locale {
	if l == ES {
		return CA
	}
	return ES
}

// DisplayName returns the locale's name in its own language
func (l Locale) DisplayName() string {
	if l == ES {
		return "Español"
	}
	return "Català"
}

// PathPrefix returns the URL prefix a locale is served under. The default
// locale owns the bare root, so its prefix is empty.
func (l Locale) PathPrefix(def Locale) string {
	if l == def {
		return ""
	}
	return "/" + string(l)
}

// ResolveFromPath maps a request path to a locale. An explicit /ca or /es
// prefix wins; every other path resolves to the deployment default.
func ResolveFromPath(path string, def Locale) Locale {
	for _, l := range SupportedLocales() {
		prefix := "/" + string(l)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return l
		}
	}
	return def
}
