package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/amarasa/lead-shield/internal/domain/errors"
)

func newPhoneClient(t *testing.T, handler http.HandlerFunc) *NumVerifyClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewNumVerifyClient(NumVerifyConfig{BaseURL: server.URL}, zap.NewNop())
}

func TestNumVerifyClient_ValidateNumber(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       PhoneLookupResult
		wantErr    bool
		wantCode   string
	}{
		{
			name:       "valid mobile",
			statusCode: http.StatusOK,
			body:       `{"valid":true,"line_type":"mobile"}`,
			want:       PhoneLookupResult{Valid: true, LineType: "mobile"},
		},
		{
			name:       "valid landline",
			statusCode: http.StatusOK,
			body:       `{"valid":true,"line_type":"landline"}`,
			want:       PhoneLookupResult{Valid: true, LineType: "landline"},
		},
		{
			name:       "line_type returned as false",
			statusCode: http.StatusOK,
			body:       `{"valid":true,"line_type":false}`,
			want:       PhoneLookupResult{Valid: true, LineType: ""},
		},
		{
			name:       "line_type returned as null",
			statusCode: http.StatusOK,
			body:       `{"valid":true,"line_type":null}`,
			want:       PhoneLookupResult{Valid: true, LineType: ""},
		},
		{
			name:       "invalid number",
			statusCode: http.StatusOK,
			body:       `{"valid":false}`,
			want:       PhoneLookupResult{Valid: false},
		},
		{
			name:       "provider error inside 200 response",
			statusCode: http.StatusOK,
			body:       `{"valid":false,"error":{"code":211,"info":"non-numeric characters detected"}}`,
			want:       PhoneLookupResult{Valid: false, ErrorInfo: "non-numeric characters detected"},
		},
		{
			name:       "malformed payload",
			statusCode: http.StatusOK,
			body:       `{"valid":`,
			wantErr:    true,
			wantCode:   ErrCodeInvalidResponse,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       `{}`,
			wantErr:    true,
			wantCode:   ErrCodeProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newPhoneClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/validate", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
				assert.Equal(t, "15551234567", r.URL.Query().Get("number"))

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			result, err := client.ValidateNumber(context.Background(), "test-key", "15551234567")
			if tt.wantErr {
				require.Error(t, err)
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Contains(t, appErr.Message, phoneProviderName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestNumVerifyClient_ConnectionFailure(t *testing.T) {
	client := NewNumVerifyClient(NumVerifyConfig{BaseURL: "http://127.0.0.1:1"}, zap.NewNop())

	_, err := client.ValidateNumber(context.Background(), "test-key", "15551234567")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrCodeConnectionFailed, appErr.Code)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
	assert.True(t, apperrors.IsRetryable(err))
}

func TestNumVerifyClient_LogsTransportFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	client := NewNumVerifyClient(NumVerifyConfig{BaseURL: "http://127.0.0.1:1"}, zap.New(core))

	_, err := client.ValidateNumber(context.Background(), "test-key", "15551234567")
	require.Error(t, err)

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "phone lookup request failed", entries[0].Message)
}

func TestLineType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LineType
		wantErr bool
	}{
		{"string value", `"mobile"`, "mobile", false},
		{"false value", `false`, "", false},
		{"null value", `null`, "", false},
		{"number value", `7`, "", true},
		{"true value", `true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lt LineType
			err := lt.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, lt)
		})
	}
}
