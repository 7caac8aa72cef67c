package feedbackerrors

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
)

var (
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"feedback type must be 3_month, 6_month or 12_month",
		http.StatusBadRequest,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeConflict,
		"feedback for this check-in has already been submitted",
		http.StatusConflict,
	)
	ErrViewForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to view this user's feedback",
		http.StatusForbidden,
	)
)
