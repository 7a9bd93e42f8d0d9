package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/http/handlers"
)

// RegisterContactRoutes accepts the contact form on every page path, since
// the client submits to window.location.pathname.
func RegisterContactRoutes(engine *gin.Engine, h *handlers.ContactHandler) {
	engine.POST("/", h.SubmitForm)
	for _, locale := range i18n.SupportedLocales() {
		engine.POST("/"+string(locale), h.SubmitForm)
	}
}
