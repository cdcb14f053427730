package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// SendFailureError represents an outbound email transport failure.
// Distinct from a generic server error so the on-demand alert path can
// report it explicitly to the caller.
type SendFailureError struct {
	Recipient string
	Reason    error
}

func (e *SendFailureError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("failed to send alert to %s: %v", e.Recipient, e.Reason)
	}
	return fmt.Sprintf("failed to send alert to %s", e.Recipient)
}

func (e *SendFailureError) Unwrap() error {
	return e.Reason
}

// CacheUnavailableError represents a cache error. Non-fatal for reads
// (the caller degrades to the store), fatal for write-side eviction.
type CacheUnavailableError struct {
	Op     string
	Reason error
}

func (e *CacheUnavailableError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("cache unavailable during %s: %v", e.Op, e.Reason)
	}
	return fmt.Sprintf("cache unavailable during %s", e.Op)
}

func (e *CacheUnavailableError) Unwrap() error {
	return e.Reason
}

// Entity Not Found Errors
var (
	ErrDrugNotFound     = &NotFoundError{Entity: "drug"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrCategoryNotFound = &NotFoundError{Entity: "category"}
)

// Business Logic Errors
var (
	ErrInvalidSortKey          = errors.New("invalid sort key")
	ErrInvalidExpirationRange  = errors.New("invalid expiration date range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrUnauthenticated    = &AuthenticationError{Message: "no authenticated tenant in context"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrReauthFailed       = &AuthorizationError{Message: "password confirmation does not match"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsSendFailure checks if an error is a SendFailureError
func IsSendFailure(err error) bool {
	var sendErr *SendFailureError
	return errors.As(err, &sendErr)
}

// IsCacheUnavailable checks if an error is a CacheUnavailableError
func IsCacheUnavailable(err error) bool {
	var cacheErr *CacheUnavailableError
	return errors.As(err, &cacheErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewSendFailureError creates a new SendFailureError
func NewSendFailureError(recipient string, reason error) error {
	return &SendFailureError{Recipient: recipient, Reason: reason}
}

// NewCacheUnavailableError creates a new CacheUnavailableError
func NewCacheUnavailableError(op string, reason error) error {
	return &CacheUnavailableError{Op: op, Reason: reason}
}
