package usecase

import (
	"context"
	"errors"
	"log/slog"

	"go-landing-mailer/internal/domain"
	"go-landing-mailer/pkg/metrics"
)

type notificationUsecase struct {
	composer *Composer
	mailer   domain.Mailer
	log      *slog.Logger
}

// NewNotificationUsecase creates the form submission pipeline
func NewNotificationUsecase(composer *Composer, mailer domain.Mailer, log *slog.Logger) domain.NotificationUsecase {
	if composer == nil {
		composer = defaultComposer
	}
	return &notificationUsecase{
		composer: composer,
		mailer:   mailer,
		log:      log,
	}
}

// Submit composes and sends one notification. Nothing is sent when validation fails.
func (uc *notificationUsecase) Submit(ctx context.Context, req *domain.NotificationRequest) domain.DeliveryOutcome {
	outcome := uc.submit(ctx, req)
	metrics.NotificationsTotal.WithLabelValues(string(req.Kind), string(outcome)).Inc()
	return outcome
}

func (uc *notificationUsecase) submit(ctx context.Context, req *domain.NotificationRequest) domain.DeliveryOutcome {
	msg, err := uc.composer.Compose(req.Kind, *req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			uc.log.Error("Missing required form data", "kind", req.Kind, "fields", vErr.Fields)
		} else {
			uc.log.Error("Failed to compose notification", "kind", req.Kind, "error", err)
		}
		return domain.OutcomeInvalid
	}

	if !uc.mailer.Send(ctx, msg) {
		uc.log.Error("Failed to send notification email", "kind", req.Kind, "user", req.Name)
		return domain.OutcomeFailed
	}

	uc.log.Info("Notification email sent", "kind", req.Kind, "user", req.Name)
	return domain.OutcomeSent
}
