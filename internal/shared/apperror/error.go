package apperror

import "fmt"

// AppError is the error type every service returns. Sentinels are declared
// once per feature in its errors package and matched with errors.Is.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches an AppError classification to an underlying error. Returns
// nil when err is nil so call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a copy of the error carrying extra payload for the
// response body. The original sentinel stays untouched so errors.Is keeps
// matching it.
func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	clone.Err = e
	return &clone
}
