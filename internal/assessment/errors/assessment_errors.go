package assessmenterrors

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
	ErrInvalidSupervisorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid supervisor id",
		http.StatusBadRequest,
	)
	ErrAssessmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"supervisor assessment not found",
		http.StatusNotFound,
	)
	ErrAssessmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a supervisor assessment already exists for this user",
		http.StatusConflict,
	)
	ErrOpenForbidden = apperror.New(
		apperror.CodeForbidden,
		"only hr can open an assessment pipeline",
		http.StatusForbidden,
	)
	ErrViewForbidden = apperror.New(
		apperror.CodeForbidden,
		"only the employee, the assigned supervisor and hr can view this assessment",
		http.StatusForbidden,
	)
	ErrCertificateForbidden = apperror.New(
		apperror.CodeForbidden,
		"only the employee or the assigned supervisor can upload the certificate",
		http.StatusForbidden,
	)
	ErrNotAssignedSupervisor = apperror.New(
		apperror.CodeForbidden,
		"only the assigned supervisor can write assessment fields",
		http.StatusForbidden,
	)
	ErrHRDecisionForbidden = apperror.New(
		apperror.CodeForbidden,
		"only hr can record the hr decision",
		http.StatusForbidden,
	)
	ErrScoreOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"assessment score must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"supervisor decision must be proceed_to_phase_2, terminate or put_on_hold",
		http.StatusBadRequest,
	)
	ErrInvalidHRDecision = apperror.New(
		apperror.CodeInvalidInput,
		"hr decision must be approve, reject or request_changes",
		http.StatusBadRequest,
	)
	ErrCertificateAlreadyUploaded = apperror.New(
		apperror.CodeInvalidState,
		"certificate has already been uploaded",
		http.StatusBadRequest,
	)
	ErrCertificateRequired = apperror.New(
		apperror.CodeInvalidState,
		"a certificate must be uploaded before the assessment",
		http.StatusBadRequest,
	)
	ErrAssessmentRequired = apperror.New(
		apperror.CodeInvalidState,
		"the assessment must be completed before a decision",
		http.StatusBadRequest,
	)
	ErrAssessmentAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"the assessment has already been submitted",
		http.StatusBadRequest,
	)
	ErrDecisionAlreadyMade = apperror.New(
		apperror.CodeInvalidState,
		"the supervisor decision has already been made",
		http.StatusBadRequest,
	)
	ErrNotAwaitingHRDecision = apperror.New(
		apperror.CodeInvalidState,
		"the assessment is not awaiting an hr decision",
		http.StatusBadRequest,
	)
	ErrPipelineClosed = apperror.New(
		apperror.CodeInvalidState,
		"the assessment pipeline has reached a terminal state",
		http.StatusBadRequest,
	)
)
