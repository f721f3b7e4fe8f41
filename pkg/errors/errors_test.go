package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewDatabaseError("PutItem", errors.New("throttled"))
	assert.Contains(t, err.Error(), "DATABASE")
	assert.Contains(t, err.Error(), "PutItem")
	assert.Contains(t, err.Error(), "throttled")
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseError("Query", cause)
	assert.ErrorIs(t, err, cause)
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"conditional check", NewConditionalCheckError("profile already exists"), IsConditionalCheck},
		{"serialization", NewSerializationError("bad profile item", nil), IsSerialization},
		{"database", NewDatabaseError("GetItem", errors.New("boom")), IsDatabase},
		{"not found", NewNotFoundError("profile"), IsNotFound},
		{"validation", NewValidationError("course_id is required"), IsValidation},
		{"unauthorized", NewUnauthorizedError(""), IsUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain error")))
		})
	}
}

func TestPredicatesMatchThroughWrapping(t *testing.T) {
	inner := NewConditionalCheckError("course already added")
	wrapped := fmt.Errorf("add course: %w", inner)
	assert.True(t, IsConditionalCheck(wrapped))
	require.NotNil(t, GetAppError(wrapped))
	assert.Equal(t, ErrorTypeConditionalCheck, GetAppError(wrapped).Type)
}

func TestWrapPlainError(t *testing.T) {
	err := Wrap(errors.New("boom"), "loading profile")
	require.True(t, IsInternal(err))
	assert.Contains(t, err.Error(), "loading profile")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "anything"))
}

func TestHTTPStatusDefaults(t *testing.T) {
	assert.Equal(t, http.StatusConflict, NewConditionalCheckError("dup").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("profile").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewSerializationError("bad item", nil).HTTPStatus)
}
