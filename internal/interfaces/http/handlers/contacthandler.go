package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joanpuche05/fisioterapiavilassar/internal/application/contact"
	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/utils"
)

// ContactHandler accepts contact-form POSTs and answers with the JSON
// contract the client-side script consumes.
type ContactHandler struct {
	service ContactService
	store   *i18n.Store
	logger  logger.Interface
}

func NewContactHandler(service ContactService, store *i18n.Store, log logger.Interface) *ContactHandler {
	return &ContactHandler{
		service: service,
		store:   store,
		logger:  log,
	}
}

// SubmitForm handles a form-encoded contact submission
func (h *ContactHandler) SubmitForm(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		h.logger.Warnw("failed to parse contact form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form submission")
		return
	}

	locale := i18n.ResolveFromPath(c.Request.URL.Path, h.store.DefaultLocale())

	message, err := h.service.Submit(c.Request.Context(), sub, locale, c.ClientIP())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message)
}
