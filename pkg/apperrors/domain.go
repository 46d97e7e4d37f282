package apperrors

import "net/http"

// Factories for wrapping repository and business-logic errors.

// ErrNotFound converts a repository not-found sentinel into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidStatus rejects an unknown status value (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition rejects a known status that the current state does not
// allow (409).
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).
		WithDetails(details)
}

func BadRequest(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// InternalError wraps anything the store could not complete. Distinct from
// not-found so a future persistent backend can fail loudly.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}
