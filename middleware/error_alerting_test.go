package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookServer(t *testing.T) (*httptest.Server, chan map[string]any) {
	received := make(chan map[string]any, 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, received
}

func TestHTTPMiddleware_RecoversPanic(t *testing.T) {
	server, received := newWebhookServer(t)
	m := NewErrorAlertMiddleware(SlackAlertConfig{WebhookURL: server.URL, Environment: "dev", AppName: "botforge"})

	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("assembler exploded")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest("POST", "/bots/b_1/export", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	select {
	case payload := <-received:
		assert.Contains(t, payload["text"], "PANIC - assembler exploded")
		assert.Contains(t, payload["text"], "HTTP POST /bots/b_1/export")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a Slack alert")
	}
}

func TestHTTPMiddleware_PassesThrough(t *testing.T) {
	m := NewErrorAlertMiddleware(SlackAlertConfig{})

	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestAlertOnError_Deduplicates(t *testing.T) {
	server, received := newWebhookServer(t)
	m := NewErrorAlertMiddleware(SlackAlertConfig{WebhookURL: server.URL, AppName: "botforge"})

	m.AlertOnError(errors.New("db down"), "export")
	m.AlertOnError(errors.New("db down"), "export")

	select {
	case payload := <-received:
		require.NotNil(t, payload)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a Slack alert")
	}

	select {
	case <-received:
		t.Fatal("duplicate alert was sent within the cooldown")
	case <-time.After(200 * time.Millisecond):
	}
}
