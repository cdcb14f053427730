package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "drug"}
		assert.Equal(t, "drug not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "drug"}
		err2 := &NotFoundError{Entity: "drug"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "drug"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDrugNotFound, ErrDrugNotFound))
		assert.False(t, errors.Is(ErrDrugNotFound, ErrCategoryNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrDrugNotFound))
		assert.False(t, IsNotFound(ErrInvalidSortKey))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "category", Message: "no such category: CANDY"}
		assert.Equal(t, "validation error: category - no such category: CANDY", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid input"}
		assert.Equal(t, "validation error: invalid input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("sort", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrDrugNotFound))
	})
}

func TestSendFailureError(t *testing.T) {
	t.Run("Error message and unwrap", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewSendFailureError("user@test.com", cause)
		assert.Contains(t, err.Error(), "user@test.com")
		assert.Contains(t, err.Error(), "connection refused")
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsSendFailure helper", func(t *testing.T) {
		err := NewSendFailureError("user@test.com", nil)
		assert.True(t, IsSendFailure(err))
		assert.False(t, IsSendFailure(ErrDrugNotFound))
	})

	t.Run("IsSendFailure through wrapping", func(t *testing.T) {
		inner := NewSendFailureError("user@test.com", errors.New("timeout"))
		wrapped := errors.Join(errors.New("batch run"), inner)
		assert.True(t, IsSendFailure(wrapped))
	})
}

func TestCacheUnavailableError(t *testing.T) {
	t.Run("Error message and unwrap", func(t *testing.T) {
		cause := errors.New("redis down")
		err := NewCacheUnavailableError("evict", cause)
		assert.Contains(t, err.Error(), "evict")
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsCacheUnavailable helper", func(t *testing.T) {
		assert.True(t, IsCacheUnavailable(NewCacheUnavailableError("get", nil)))
		assert.False(t, IsCacheUnavailable(ErrUserNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("Authentication helpers", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUnauthenticated))
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrReauthFailed))
	})

	t.Run("Authorization helpers", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrReauthFailed))
		assert.False(t, IsAuthorization(ErrUnauthenticated))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
