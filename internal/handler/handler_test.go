package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formgate/internal/handler"
	"github.com/dmitrymomot/formgate/internal/notification"
	"github.com/dmitrymomot/formgate/pkg/email"
	"github.com/dmitrymomot/formgate/pkg/logger"
	"github.com/dmitrymomot/formgate/pkg/ratelimit"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg email.Message) (*email.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, msg)
	return &email.Receipt{Provider: "fake", MessageID: "msg-1"}, nil
}

func (f *fakeSender) lastSent(t *testing.T) email.Message {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

type testEnv struct {
	handler *handler.Handler
	router  http.Handler
	sender  *fakeSender
	logs    *bytes.Buffer
}

func newTestEnv(t *testing.T, cfg handler.Config) *testEnv {
	t.Helper()

	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 5 * time.Second
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = 1 << 20
	}
	if cfg.RateLimitRequests == 0 {
		cfg.RateLimitRequests = 100
	}
	if cfg.RateLimitWindow == 0 {
		cfg.RateLimitWindow = time.Minute
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "http://localhost:3000"
	}

	renderer := notification.MustNewRenderer(notification.Config{
		ContactRecipient: "contact@example.com",
		HRRecipient:      "hr@example.com",
	})

	sender := &fakeSender{}
	logs := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(logs), logger.WithFormat(logger.FormatJSON))

	h := handler.New(cfg, renderer, sender, log)

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	limiter, err := ratelimit.NewFixedWindow(store, cfg.RateLimitRequests, cfg.RateLimitWindow)
	require.NoError(t, err)

	return &testEnv{
		handler: h,
		router:  h.Router(limiter),
		sender:  sender,
		logs:    logs,
	}
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:54321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Success, resp.Message
}

const validContact = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+1 555 0100",
	"projectType": "Electrical",
	"message": "Need a quote."
}`

const validApplication = `{
	"jobTitle": "Electrician",
	"firstName": "John",
	"lastName": "Smith",
	"email": "john@example.com"
}`

func TestSubmitContact(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		rec := postJSON(t, env.router, "/api/contact", validContact)
		require.Equal(t, http.StatusOK, rec.Code)

		success, message := decodeEnvelope(t, rec)
		assert.True(t, success)
		assert.Equal(t, "Message sent successfully!", message)

		sent := env.sender.lastSent(t)
		assert.Equal(t, "contact@example.com", sent.SendTo)
		assert.Equal(t, "Contact Form: Electrical Project", sent.Subject)
		assert.Equal(t, "jane@example.com", sent.ReplyTo)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		rec := postJSON(t, env.router, "/api/contact", `{"name": "Jane"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		success, message := decodeEnvelope(t, rec)
		assert.False(t, success)
		assert.Contains(t, message, "email is required")
		assert.Empty(t, env.sender.sent)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		rec := postJSON(t, env.router, "/api/contact", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContact))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("transport failure returns generic message", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})
		env.sender.err = errors.Join(email.ErrRejected, errors.New("sender signature not confirmed"))

		rec := postJSON(t, env.router, "/api/contact", validContact)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		success, message := decodeEnvelope(t, rec)
		assert.False(t, success)
		assert.Equal(t, "Failed to send message", message)
		assert.NotContains(t, rec.Body.String(), "signature")

		// Diagnostic detail goes to the log, not the client.
		assert.Contains(t, env.logs.String(), "sender signature not confirmed")
	})

	t.Run("body over limit", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{MaxBodySize: 64})

		big := `{"name":"` + strings.Repeat("a", 200) + `"}`
		rec := postJSON(t, env.router, "/api/contact", big)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestSubmitJobApplication(t *testing.T) {
	t.Parallel()

	t.Run("success with attachments", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		payload := `{
			"jobTitle": "Electrician",
			"firstName": "John",
			"lastName": "Smith",
			"email": "john@example.com",
			"resume": "JVBERi0xLjQ=",
			"additionalDocuments": [{"filename": "cert.pdf", "type": "application/pdf", "content": "AQID"}]
		}`
		rec := postJSON(t, env.router, "/api/job-application", payload)
		require.Equal(t, http.StatusOK, rec.Code)

		success, message := decodeEnvelope(t, rec)
		assert.True(t, success)
		assert.Equal(t, "Application submitted successfully!", message)

		sent := env.sender.lastSent(t)
		assert.Equal(t, "hr@example.com", sent.SendTo)
		assert.Equal(t, "New Job Application: Electrician - John Smith", sent.Subject)
		require.Len(t, sent.Attachments, 2)
		assert.Equal(t, "resume.pdf", sent.Attachments[0].Filename)
		assert.Equal(t, "cert.pdf", sent.Attachments[1].Filename)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		rec := postJSON(t, env.router, "/api/job-application", `{"jobTitle": "Electrician"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		success, message := decodeEnvelope(t, rec)
		assert.False(t, success)
		assert.Contains(t, message, "firstName is required")
		assert.Contains(t, message, "lastName is required")
	})

	t.Run("transport failure returns generic message", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})
		env.sender.err = email.ErrNetwork

		rec := postJSON(t, env.router, "/api/job-application", validApplication)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		_, message := decodeEnvelope(t, rec)
		assert.Equal(t, "Failed to submit application. Please try again.", message)
	})
}

func TestRouterRateLimit(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, handler.Config{RateLimitRequests: 5, RateLimitWindow: 15 * time.Minute})

	for i := 0; i < 5; i++ {
		rec := postJSON(t, env.router, "/api/contact", validContact)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := postJSON(t, env.router, "/api/contact", validContact)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	success, message := decodeEnvelope(t, rec)
	assert.False(t, success)
	assert.Equal(t, "Too many emails sent from this IP, please try again later.", message)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	// Both endpoints share one budget per client IP.
	rec = postJSON(t, env.router, "/api/job-application", validApplication)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Len(t, env.sender.sent, 5)
}

func TestRouterMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("security headers", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		rec := postJSON(t, env.router, "/api/contact", validContact)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	})

	t.Run("cors allows configured origin", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{AllowedOrigin: "https://app.example.com"})

		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("cors ignores other origins", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{AllowedOrigin: "https://app.example.com"})

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContact))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("health endpoint", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, handler.Config{})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}
