package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the landing page form
var FieldLabels = map[string]string{
	"Name":        "Nombre",
	"Phone":       "Teléfono",
	"Email":       "Email",
	"Description": "Descripción",
	"Day":         "Día",
	"Hour":        "Hora",
	"Kind":        "Tipo de solicitud",
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// FieldNames returns the struct field names that failed validation
func FieldNames(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	names := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		names = append(names, e.Field())
	}
	return names
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required", "notblank", "required_if":
		return fmt.Sprintf("%s: obligatorio", label)
	case "oneof":
		return fmt.Sprintf("%s: debe ser uno de: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s: validación fallida (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
