package http

import (
	"github.com/gin-gonic/gin"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/config"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/content"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/template"
	"github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/http/handlers"
	"github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/http/middleware"
	"github.com/joanpuche05/fisioterapiavilassar/internal/interfaces/http/routes"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	pageHandler    *handlers.PageHandler
	contactHandler *handlers.ContactHandler
	staticDir      string
}

// NewRouter wires the handlers into a gin engine
func NewRouter(
	cfg *config.Config,
	store *i18n.Store,
	renderer *template.PageRenderer,
	privacy *content.PrivacyContent,
	contactService handlers.ContactService,
	log logger.Interface,
) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	return &Router{
		engine:         engine,
		pageHandler:    handlers.NewPageHandler(renderer, privacy, store, log),
		contactHandler: handlers.NewContactHandler(contactService, store, log),
		staticDir:      cfg.Site.StaticDir,
	}
}

// SetupRoutes registers all HTTP routes
func (r *Router) SetupRoutes() {
	routes.RegisterPageRoutes(r.engine, r.pageHandler, r.staticDir)
	routes.RegisterContactRoutes(r.engine, r.contactHandler)
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
