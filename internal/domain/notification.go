package domain

import "context"

// NotificationKind selects which form produced the request and which template renders it
type NotificationKind string

const (
	KindAppointment NotificationKind = "appointment"
	KindMessage     NotificationKind = "message"
)

func (k NotificationKind) Valid() bool {
	return k == KindAppointment || k == KindMessage
}

// NotificationRequest is built from a landing page form submission.
// Day and Hour are only required for appointments.
type NotificationRequest struct {
	Kind        NotificationKind `form:"-" validate:"required,oneof=appointment message"`
	Name        string           `form:"username" validate:"notblank"`
	Phone       string           `form:"telefono" validate:"notblank"`
	Email       string           `form:"email" validate:"notblank"`
	Description string           `form:"descripcion" validate:"notblank"`
	Day         string           `form:"day" validate:"required_if=Kind appointment"`
	Hour        string           `form:"hour" validate:"required_if=Kind appointment"`
}

// RenderedMessage is the subject and plain-text body handed to the mail transport
type RenderedMessage struct {
	Subject string
	Body    string
}

// DeliveryOutcome is what the pipeline observed for one submission
type DeliveryOutcome string

const (
	OutcomeSent    DeliveryOutcome = "sent"
	OutcomeInvalid DeliveryOutcome = "invalid"
	OutcomeFailed  DeliveryOutcome = "failed"
)

// Mailer delivers a rendered message to the configured recipient.
// Send reports success and never panics.
type Mailer interface {
	Send(ctx context.Context, msg RenderedMessage) bool
}

// NotificationUsecase runs validate -> compose -> send for one form submission
type NotificationUsecase interface {
	Submit(ctx context.Context, req *NotificationRequest) DeliveryOutcome
}
