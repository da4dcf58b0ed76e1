package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"go-landing-mailer/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type NotificationHandler struct {
	notificationUC  domain.NotificationUsecase
	surfaceFailures bool
	log             *slog.Logger
}

// NewNotificationHandler registers the public form routes
func NewNotificationHandler(r gin.IRoutes, notificationUC domain.NotificationUsecase, surfaceFailures bool, log *slog.Logger) {
	handler := &NotificationHandler{
		notificationUC:  notificationUC,
		surfaceFailures: surfaceFailures,
		log:             log,
	}

	r.POST("/agenda", handler.Submit(domain.KindAppointment))
	r.POST("/mensaje", handler.Submit(domain.KindMessage))
}

// Submit binds the form, runs the notification pipeline and always redirects to
// the landing page. The outcome only reaches the browser when surfaceFailures is set.
func (h *NotificationHandler) Submit(kind domain.NotificationKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome := domain.OutcomeInvalid

		var req domain.NotificationRequest
		if err := c.ShouldBindWith(&req, binding.Form); err != nil {
			h.log.Error("Failed to parse form", "kind", kind, "error", err)
		} else {
			req.Kind = kind
			// a client hanging up must not abort a send already in progress; SMTP.Timeout bounds it
			outcome = h.notificationUC.Submit(context.WithoutCancel(c.Request.Context()), &req)
		}

		c.Redirect(http.StatusSeeOther, h.redirectTarget(outcome))
	}
}

func (h *NotificationHandler) redirectTarget(outcome domain.DeliveryOutcome) string {
	if !h.surfaceFailures {
		return "/"
	}
	return "/?" + url.Values{"status": {string(outcome)}}.Encode()
}
