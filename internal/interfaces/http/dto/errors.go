package dto

import "net/http"

// Error codes shared between domain errors and HTTP responses
const (
	ErrCodeInternal      = "INTERNAL"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeValidation    = "VALIDATION"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidState  = "INVALID_STATE"
	ErrCodeBusinessRule  = "BUSINESS_RULE"
	ErrCodeDataIntegrity = "DATA_INTEGRITY"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:  http.StatusUnprocessableEntity,
	ErrCodeDataIntegrity: http.StatusInternalServerError,
	ErrCodeUnauthorized:  http.StatusUnauthorized,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
// for anything unknown.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
