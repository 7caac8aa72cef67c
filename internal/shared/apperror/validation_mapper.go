package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

// MapValidationError converts a validator.ValidationErrors into a single
// client-facing AppError built from the first failing field.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	first := verrs[0]
	// Field() is the json name already, see Init.
	field := fieldCaser.String(strings.ReplaceAll(first.Field(), "_", " "))

	if first.Tag() == "required" {
		return RequiredField(field)
	}
	return InvalidField(field)
}
