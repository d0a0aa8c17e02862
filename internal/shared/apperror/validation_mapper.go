package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required", "required_if":
		return name + " is required"
	case "max":
		return name + " must not exceed " + e.Param() + " characters"
	case "min":
		return name + " must be at least " + e.Param()
	case "email":
		return name + " must be a valid email address"
	case "oneof":
		return name + " must be one of: " + e.Param()
	case "phone8":
		return name + " must be exactly 8 digits"
	case "notfuture":
		return name + " must be a date not after today"
	case "eqfield":
		return name + " confirmation does not match"
	default:
		return name + " is invalid"
	}
}

// MapValidationError converts binding errors into an INVALID_INPUT AppError
// whose message names the first failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			details = append(details, FieldError{Field: e.Field(), Message: fieldMessage(e)})
		}

		first := errs[0]
		var appErr *AppError
		if first.Tag() == "required" {
			appErr = RequiredField(formatFieldName(first.Field()))
		} else {
			appErr = New(CodeInvalidInput, details[0].Message, http.StatusBadRequest)
		}
		return appErr.WithDetails(details)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

// Validation builds a field level error for rules checked in services.
func Validation(field, message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest).
		WithDetails([]FieldError{{Field: field, Message: message}})
}
