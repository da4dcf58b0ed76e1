package v1

import (
	"net/http"

	"go-landing-mailer/config"
	"go-landing-mailer/internal/domain"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the landing page, which also serves as the 404 and 500 page
type PageHandler struct {
	title           string
	version         string
	surfaceFailures bool
}

func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{
		title:           "Agenda y contacto",
		version:         cfg.App.Version,
		surfaceFailures: cfg.Notify.SurfaceFailures,
	}
}

func (h *PageHandler) Landing(c *gin.Context) {
	status := ""
	if h.surfaceFailures {
		switch outcome := domain.DeliveryOutcome(c.Query("status")); outcome {
		case domain.OutcomeSent, domain.OutcomeInvalid, domain.OutcomeFailed:
			status = string(outcome)
		}
	}
	h.render(c, http.StatusOK, status)
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "")
}

// Render shows the landing page with the given status code
func (h *PageHandler) Render(c *gin.Context, code int) {
	h.render(c, code, "")
}

func (h *PageHandler) render(c *gin.Context, code int, status string) {
	c.HTML(code, "index.html", gin.H{
		"Title":   h.title,
		"Version": h.version,
		"Status":  status,
	})
}
