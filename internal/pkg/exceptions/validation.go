package exceptions

import (
	"strings"

	"counselink-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors flattens validator errors into a single
// client-facing message listing every failing field.
func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrClientCannotProcessRequest
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		tag := fieldErr.Tag()
		customMessage, known := constvars.CustomValidationErrorMessages[tag]
		if !known {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
			}
		}
		messages = append(messages, fieldName+" "+customMessage)
	}
	return strings.Join(messages, ", ")
}
