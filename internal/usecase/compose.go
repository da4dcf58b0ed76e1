package usecase

import (
	"fmt"
	"strings"

	"go-landing-mailer/internal/domain"
	"go-landing-mailer/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the form fields that were missing or blank
type ValidationError struct {
	Kind   domain.NotificationKind
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s request: %s", e.Kind, strings.Join(validation.FormatValidationErrors(e.Err), "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Composer renders notification requests into mail messages
type Composer struct {
	validate *validator.Validate
}

func NewComposer(validate *validator.Validate) *Composer {
	if validate == nil {
		validate = validation.New()
	}
	return &Composer{validate: validate}
}

var defaultComposer = NewComposer(nil)

// Compose validates req and renders it with the template for kind
func Compose(kind domain.NotificationKind, req domain.NotificationRequest) (domain.RenderedMessage, error) {
	return defaultComposer.Compose(kind, req)
}

func (c *Composer) Compose(kind domain.NotificationKind, req domain.NotificationRequest) (domain.RenderedMessage, error) {
	if !kind.Valid() {
		return domain.RenderedMessage{}, fmt.Errorf("unknown notification kind %q", kind)
	}

	fields := normalize(kind, req)

	if err := c.validate.Struct(fields); err != nil {
		return domain.RenderedMessage{}, &ValidationError{
			Kind:   kind,
			Fields: validation.FieldNames(err),
			Err:    err,
		}
	}

	switch kind {
	case domain.KindAppointment:
		return domain.RenderedMessage{
			Subject: fmt.Sprintf("Agenda cliente %s", fields.Name),
			Body: fmt.Sprintf("El usuario %s con teléfono %s y su email %s\n"+
				"Realizó una cita el día %s en la hora %s por el siguiente problema: %s",
				fields.Name, fields.Phone, fields.Email, fields.Day, fields.Hour, fields.Description),
		}, nil
	case domain.KindMessage:
		return domain.RenderedMessage{
			Subject: "Notificación cliente",
			Body: fmt.Sprintf("El usuario %s con teléfono %s y su email %s\n"+
				"Se contactó con usted por el siguiente problema: %s",
				fields.Name, fields.Phone, fields.Email, fields.Description),
		}, nil
	}

	return domain.RenderedMessage{}, fmt.Errorf("no template for notification kind %q", kind)
}

func normalize(kind domain.NotificationKind, req domain.NotificationRequest) domain.NotificationRequest {
	return domain.NotificationRequest{
		Kind:        kind,
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		Description: strings.TrimSpace(req.Description),
		Day:         strings.TrimSpace(req.Day),
		Hour:        strings.TrimSpace(req.Hour),
	}
}
