package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"botforge/appctx"
)

func TestWithAuth_TestingModeSetsOwner(t *testing.T) {
	t.Setenv("TESTING_MODE", "true")
	m := NewClerkAuthMiddleware("sk_test_unused")

	var ownerID string
	handler := m.WithAuth(func(w http.ResponseWriter, r *http.Request) {
		ownerID, _ = appctx.GetOwnerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/bots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, TestOwnerID, ownerID)
}

func TestWithAuth_RejectsMissingOrMalformedHeader(t *testing.T) {
	t.Setenv("TESTING_MODE", "false")
	m := NewClerkAuthMiddleware("sk_test_unused")

	tests := []struct {
		name   string
		header string
		body   string
	}{
		{name: "missing", header: "", body: "missing authorization header"},
		{name: "not bearer", header: "Basic abc", body: "invalid authorization header format"},
		{name: "empty token", header: "Bearer ", body: "empty bearer token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := m.WithAuth(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest("GET", "/bots", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error": "`+tt.body+`"}`, rec.Body.String())
		})
	}
}
