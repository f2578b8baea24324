package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookNotifier_Notify(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(Config{}, zap.NewNop())
	err := notifier.Notify(context.Background(), server.URL, "quota exhausted")

	require.NoError(t, err)
	assert.Equal(t, "quota exhausted", received.Text)
}

func TestWebhookNotifier_Notify_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(Config{}, zap.NewNop())
	err := notifier.Notify(context.Background(), server.URL, "quota exhausted")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestWebhookNotifier_Notify_ConnectionFailure(t *testing.T) {
	notifier := NewWebhookNotifier(Config{}, zap.NewNop())
	err := notifier.Notify(context.Background(), "http://127.0.0.1:1/hook", "quota exhausted")

	assert.Error(t, err)
}

func TestExhaustionMessage(t *testing.T) {
	msg := ExhaustionMessage("leads.example.com")

	assert.Contains(t, msg, "leads.example.com")
	assert.Contains(t, msg, "out of credits")
}
