package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a NOT_FOUND error naming the entity and its id
func NewNotFoundError(entity string, id int64) *DomainError {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s with id %d not found", entity, id))
}

// NewValidationError creates a VALIDATION error
func NewValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION", message)
}

// NewBusinessRuleError creates a BUSINESS_RULE error
func NewBusinessRuleError(message string) *DomainError {
	return NewDomainError("BUSINESS_RULE", message)
}

// NewDataIntegrityError creates a DATA_INTEGRITY error for rows that violate
// storage-level invariants discovered at read time
func NewDataIntegrityError(message string) *DomainError {
	return NewDomainError("DATA_INTEGRITY", message)
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
)
