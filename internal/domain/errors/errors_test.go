package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name          string
		err           *AppError
		wantType      ErrorType
		wantRetryable bool
	}{
		{
			name:     "validation",
			err:      NewValidationError("INVALID_CONFIG", "config cannot be nil"),
			wantType: ErrorTypeValidation,
		},
		{
			name:     "configuration",
			err:      NewConfigurationError("PHONE_API_KEY_MISSING", "phone verification API key is not configured"),
			wantType: ErrorTypeConfiguration,
		},
		{
			name:          "transport",
			err:           NewTransportError("CONNECTION_FAILED", "request failed"),
			wantType:      ErrorTypeTransport,
			wantRetryable: true,
		},
		{
			name:     "external",
			err:      NewExternalError("INVALID_RESPONSE", "response is missing the status field"),
			wantType: ErrorTypeExternal,
		},
		{
			name:     "internal",
			err:      NewInternalError("VERIFIER_PANIC", "verifier panicked"),
			wantType: ErrorTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantRetryable, tt.err.Retryable)
			assert.True(t, IsType(tt.err, tt.wantType))
			assert.Equal(t, tt.wantRetryable, IsRetryable(tt.err))
		})
	}
}

func TestAppError_Cause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("CONNECTION_FAILED", "request failed").WithCause(cause)

	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)

	bare := NewValidationError("INVALID_CONFIG", "config cannot be nil")
	assert.Equal(t, "config cannot be nil", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestIsType_WrappedError(t *testing.T) {
	// Classification survives fmt-style wrapping.
	inner := NewTransportError("CONNECTION_FAILED", "request failed")
	wrapped := Wrap(inner, "credit check")

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "credit check")
	assert.True(t, IsType(wrapped, ErrorTypeTransport))
	assert.True(t, IsRetryable(wrapped))
	assert.False(t, IsType(wrapped, ErrorTypeExternal))
}

func TestIsType_PlainError(t *testing.T) {
	plain := errors.New("boom")

	assert.False(t, IsType(plain, ErrorTypeTransport))
	assert.False(t, IsRetryable(plain))
	assert.Nil(t, Wrap(nil, "noop"))
}
