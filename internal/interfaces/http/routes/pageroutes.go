package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/http/handlers"
)

// privacySlugs maps each locale to its privacy-policy URL slug
var privacySlugs = map[i18n.Locale]string{
	i18n.CA: "politica-de-privacitat",
	i18n.ES: "politica-de-privacidad",
}

// RegisterPageRoutes wires up the rendered pages and static assets
func RegisterPageRoutes(engine *gin.Engine, h *handlers.PageHandler, staticDir string) {
	engine.GET("/", h.ShowHome)
	for _, locale := range i18n.SupportedLocales() {
		engine.GET("/"+string(locale), h.ShowHome)
		engine.GET("/"+string(locale)+"/"+privacySlugs[locale], h.ShowPrivacy)
	}

	engine.Static("/css", filepath.Join(staticDir, "css"))
	engine.Static("/js", filepath.Join(staticDir, "js"))
	engine.Static("/assets", filepath.Join(staticDir, "assets"))

	engine.NoRoute(h.NotFound)
}
