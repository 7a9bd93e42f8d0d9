package handlers

import (
	htmltemplate "html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/content"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/template"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
)

// PageHandler serves the rendered site pages
type PageHandler struct {
	renderer *template.PageRenderer
	privacy  *content.PrivacyContent
	store    *i18n.Store
	logger   logger.Interface
}

func NewPageHandler(
	renderer *template.PageRenderer,
	privacy *content.PrivacyContent,
	store *i18n.Store,
	log logger.Interface,
) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		privacy:  privacy,
		store:    store,
		logger:   log,
	}
}

// ShowHome renders the landing page in the locale the path resolves to
func (h *PageHandler) ShowHome(c *gin.Context) {
	h.renderPage(c, "index", "")
}

// ShowPrivacy renders the privacy-policy page
func (h *PageHandler) ShowPrivacy(c *gin.Context) {
	locale := i18n.ResolveFromPath(c.Request.URL.Path, h.store.DefaultLocale())
	h.renderPage(c, "privacy", h.privacy.Body(locale))
}

// NotFound answers unmatched routes with a plain 404
func (h *PageHandler) NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Page not found")
}

func (h *PageHandler) renderPage(c *gin.Context, name string, body htmltemplate.HTML) {
	locale := i18n.ResolveFromPath(c.Request.URL.Path, h.store.DefaultLocale())
	data := h.renderer.PageData(c.Request, locale)
	data.Body = body

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	if err := h.renderer.Render(c.Writer, name, data); err != nil {
		h.logger.Errorw("failed to render page",
			"page", name,
			"locale", locale,
			"error", err,
		)
	}
}
