package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"schema mismatch", NewSchemaMismatchError("missing columns", "Severity"), ErrorTypeSchemaMismatch, http.StatusUnprocessableEntity},
		{"parse", NewParseError("bad timestamp"), ErrorTypeParse, http.StatusUnprocessableEntity},
		{"duplicate user", NewDuplicateUserError("taken"), ErrorTypeDuplicateUser, http.StatusConflict},
		{"invalid credentials", NewInvalidCredentialsError("nope"), ErrorTypeInvalidCredentials, http.StatusUnauthorized},
		{"not authenticated", NewNotAuthenticatedError("login"), ErrorTypeNotAuthenticated, http.StatusUnauthorized},
		{"io", NewIOError("unreadable"), ErrorTypeIO, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "parse_error: bad value", NewParseError("bad value").Error())
	assert.Equal(t, "schema_mismatch: missing (Severity)", NewSchemaMismatchError("missing", "Severity").Error())
}

func TestWrappedAppErrorIsClassified(t *testing.T) {
	err := fmt.Errorf("ingest: %w", NewParseError("bad value"))

	assert.True(t, IsParseError(err))
	assert.False(t, IsSchemaMismatchError(err))
	require.NotNil(t, GetAppError(err))
}

func TestWithCause(t *testing.T) {
	root := errors.New("disk gone")
	err := NewIOError("cannot read file").WithCause(root)

	assert.ErrorIs(t, err, root)
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'username'")))
	assert.True(t, IsDuplicateError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username"`)))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: users.username")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
