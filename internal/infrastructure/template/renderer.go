// Package template renders the site's HTML pages. Templates are parsed once
// at startup; untrusted text (translations, visitor input) goes through
// html/template's contextual escaping on every interpolation.
package template

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
)

// PageRenderer loads and renders the site page templates
type PageRenderer struct {
	templates map[string]*htmltemplate.Template
	store     *i18n.Store
	siteKey   string
	logger    logger.Interface
}

// NewPageRenderer parses every page template from dir. A missing or invalid
// template is a startup error: the process cannot serve pages without them.
func NewPageRenderer(dir string, store *i18n.Store, siteKey string, log logger.Interface) (*PageRenderer, error) {
	names := []string{"index", "privacy"}

	templates := make(map[string]*htmltemplate.Template, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name+".html.tmpl")
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read page template %s: %w", path, err)
		}
		tmpl, err := htmltemplate.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse page template %s: %w", path, err)
		}
		templates[name] = tmpl
		log.Debugw("loaded page template", "name", name, "path", path)
	}

	return &PageRenderer{
		templates: templates,
		store:     store,
		siteKey:   siteKey,
		logger:    log,
	}, nil
}

// PageData is the per-request view model handed to a page template
type PageData struct {
	Lang              string
	AlternateLang     string
	AlternateLangName string
	AlternatePath     string
	CanonicalPath     string
	BaseURL           string
	TurnstileSiteKey  string
	Body              htmltemplate.HTML

	tree i18n.ObjectNode
}

// T looks up a translation by dotted path, returning "" when absent
func (d *PageData) T(path string) string {
	return i18n.Lookup(d.tree, path, "")
}

// Asset returns the absolute URL for a static asset path
func (d *PageData) Asset(path string) string {
	return AssetURL(d.BaseURL, path)
}

// PageData builds the view model for a request resolved to a locale
func (r *PageRenderer) PageData(req *http.Request, locale i18n.Locale) *PageData {
	def := r.store.DefaultLocale()
	alternate := locale.Alternate()

	alternatePath := alternate.PathPrefix(def)
	if alternatePath == "" {
		alternatePath = "/"
	}

	return &PageData{
		Lang:              string(locale),
		AlternateLang:     string(alternate),
		AlternateLangName: alternate.DisplayName(),
		AlternatePath:     alternatePath,
		CanonicalPath:     locale.PathPrefix(def),
		BaseURL:           BaseURL(req),
		TurnstileSiteKey:  r.siteKey,
		tree:              r.store.Tree(locale),
	}
}

// Render writes a named page to w
func (r *PageRenderer) Render(w io.Writer, name string, data *PageData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page %q: %w", name, err)
	}
	return nil
}

// BaseURL reconstructs the request's origin, trusting X-Forwarded-Proto so
// URLs stay correct behind a TLS-terminating proxy.
func BaseURL(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + req.Host
}

// AssetURL joins a base origin with a percent-encoded asset path. Segments
// are encoded individually so filenames with spaces stay valid URLs.
func AssetURL(base, path string) string {
	path = strings.TrimPrefix(path, "/")

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return base + "/" + strings.Join(segments, "/")
}
