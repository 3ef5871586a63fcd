package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// loggedRequest builds a request carrying a buffer-backed zerolog logger in
// its context, the way withTraceID installs one in production.
func loggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func respondWith(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		if body != "" {
			_, _ = w.Write([]byte(body))
		}
	})
}

func TestWithLogging_RequestSummary(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		status      int
		body        string
		logContains []string
	}{
		{
			name:   "successful login",
			method: http.MethodPost,
			path:   "/api/auth/login",
			status: http.StatusOK,
			body:   `{"user_uid":"uid-1"}`,
			logContains: []string{
				`"method":"POST"`,
				`"uri":"/api/auth/login"`,
				`"status":200`,
				`"duration":`,
				`"size":20`,
			},
		},
		{
			name:   "registration created",
			method: http.MethodPost,
			path:   "/api/auth/register",
			status: http.StatusCreated,
			body:   `{"user_uid":"uid-2"}`,
			logContains: []string{
				`"method":"POST"`,
				`"uri":"/api/auth/register"`,
				`"status":201`,
			},
		},
		{
			name:        "logout without body",
			method:      http.MethodPost,
			path:        "/api/auth/logout",
			status:      http.StatusNoContent,
			logContains: []string{`"uri":"/api/auth/logout"`, `"status":204`, `"size":0`},
		},
		{
			name:        "rejected credentials",
			method:      http.MethodPost,
			path:        "/api/auth/login",
			status:      http.StatusUnauthorized,
			body:        "invalid email/password",
			logContains: []string{`"status":401`},
		},
		{
			name:        "session check with query string",
			method:      http.MethodGet,
			path:        "/api/auth/session?verbose=1",
			status:      http.StatusOK,
			body:        `{"active":true}`,
			logContains: []string{`"uri":"/api/auth/session?verbose=1"`, `"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			req := loggedRequest(tt.method, tt.path, &logBuf)
			rr := httptest.NewRecorder()
			withLogging(respondWith(tt.status, tt.body)).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.logContains {
				assert.Contains(t, logBuf.String(), want)
			}
		})
	}
}

func TestWithLogging(t *testing.T) {
	t.Run("implicit status logged as 200", func(t *testing.T) {
		var logBuf bytes.Buffer
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			// нет явного WriteHeader
			_, _ = w.Write([]byte(`{"active":true}`))
		})

		rr := httptest.NewRecorder()
		withLogging(next).ServeHTTP(rr, loggedRequest(http.MethodGet, "/api/auth/session", &logBuf))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, logBuf.String(), `"status":200`)
	})

	t.Run("duration covers handler time", func(t *testing.T) {
		delay := 50 * time.Millisecond
		var logBuf bytes.Buffer
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(delay)
			w.WriteHeader(http.StatusOK)
		})

		start := time.Now()
		withLogging(next).ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodPost, "/api/auth/phone/verify", &logBuf))

		assert.GreaterOrEqual(t, time.Since(start), delay)
		assert.Contains(t, logBuf.String(), `"duration":`)
	})

	t.Run("panic passes through to chi Recoverer", func(t *testing.T) {
		var logBuf bytes.Buffer
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			panic("handler panic")
		})

		req := loggedRequest(http.MethodPost, "/api/auth/login", &logBuf)
		assert.Panics(t, func() {
			withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
		})
	})

	t.Run("nop logger in context is fine", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req = req.WithContext(logger.Nop().Logger.WithContext(req.Context()))

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			withLogging(respondWith(http.StatusOK, "")).ServeHTTP(rr, req)
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("concurrent requests each get their own summary", func(t *testing.T) {
		middleware := withLogging(respondWith(http.StatusOK, ""))

		const n = 50
		done := make(chan struct{}, n)
		for i := 0; i < n; i++ {
			go func() {
				defer func() { done <- struct{}{} }()

				var buf bytes.Buffer
				rr := httptest.NewRecorder()
				middleware.ServeHTTP(rr, loggedRequest(http.MethodGet, "/api/auth/session", &buf))

				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Contains(t, buf.String(), `"status":200`)
			}()
		}
		for i := 0; i < n; i++ {
			<-done
		}
	})
}
