package eventerrors

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
)

var (
	ErrCreateForbidden = apperror.New(
		apperror.CodeForbidden,
		"only hr can create company events",
		http.StatusForbidden,
	)
	ErrStartDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"event start date must be in the future",
		http.StatusBadRequest,
	)
)
