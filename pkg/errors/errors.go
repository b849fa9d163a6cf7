package errors

import "errors"

// Error codes shared between the domain services and the HTTP layer. The HTTP
// layer maps each code to a status; anything without a known code is treated
// as an internal failure and genericized before it reaches a client.
const (
	CodeInvalidInput = "invalid_input"
	CodeDomain       = "domain_error"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal_error"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// Invalid reports a validation failure attributable to the caller.
func Invalid(message string) error {
	return &AppError{Code: CodeInvalidInput, Message: message}
}

// Domain reports a request that is well-formed but astronomically unresolvable.
func Domain(message string, err error) error {
	return Wrap(CodeDomain, message, err)
}

// IsCode helps the handler differentiate failures.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the AppError code, or CodeInternal when the error carries none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
