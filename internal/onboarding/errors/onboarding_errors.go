package onboardingerrors

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
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid task id",
		http.StatusBadRequest,
	)
	ErrInvalidStage = apperror.New(
		apperror.CodeInvalidInput,
		"unknown onboarding stage",
		http.StatusBadRequest,
	)
	ErrProgressNotFound = apperror.New(
		apperror.CodeNotFound,
		"onboarding journey not found for this user",
		http.StatusNotFound,
	)
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"onboarding task not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrJourneyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"onboarding journey already exists for this user",
		http.StatusConflict,
	)
	ErrTaskEditForbidden = apperror.New(
		apperror.CodeForbidden,
		"only supervisors and hr can edit task completion",
		http.StatusForbidden,
	)
	ErrValidateForbidden = apperror.New(
		apperror.CodeForbidden,
		"only hr can validate tasks",
		http.StatusForbidden,
	)
	ErrAdvanceForbidden = apperror.New(
		apperror.CodeForbidden,
		"only supervisors and hr can advance onboarding phases",
		http.StatusForbidden,
	)
	ErrViewForbidden = apperror.New(
		apperror.CodeForbidden,
		"you may only view your own record or a direct report",
		http.StatusForbidden,
	)
	ErrResetForbidden = apperror.New(
		apperror.CodeForbidden,
		"only hr can reset an onboarding journey",
		http.StatusForbidden,
	)
	ErrTaskNotCompleted = apperror.New(
		apperror.CodeInvalidState,
		"task must be completed before hr validation",
		http.StatusBadRequest,
	)
	ErrAlreadyAtFinalStage = apperror.New(
		apperror.CodeInvalidState,
		"journey is already at the final stage",
		http.StatusBadRequest,
	)
	ErrValidatedTaskImmutable = apperror.New(
		apperror.CodeInvalidState,
		"hr validation cannot be kept on an incomplete task",
		http.StatusBadRequest,
	)
)
