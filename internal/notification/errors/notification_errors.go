package notificationerrors

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown notification type",
		http.StatusBadRequest,
	)
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"only the recipient can read this notification",
		http.StatusForbidden,
	)
	ErrCreateForbidden = apperror.New(
		apperror.CodeForbidden,
		"only hr can send a notification directly",
		http.StatusForbidden,
	)
)
