// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzipBody(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestWithGZip_CompressesResponseWhenAccepted(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzipped    bool
	}{
		{"plain gzip", "gzip", true},
		{"gzip among others", "deflate, gzip, br", true},
		{"gzip with quality value", "gzip;q=1.0, identity;q=0.5", true},
		{"no accept-encoding", "", false},
		{"unrelated encodings", "br, deflate", false},
	}

	const responseBody = `{"user_uid":"uid-1"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(responseBody))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, responseBody, gunzipBody(t, rr.Body))
			} else {
				assert.NotEqual(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, responseBody, rr.Body.String())
			}
		})
	}
}

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	credentials := []byte(`{"email":"john@example.com","password":"secret"}`)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, string(credentials), string(body))
		// Content-Encoding снимается после распаковки
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", gzipBytes(t, credentials))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithGZip_RoundTrip(t *testing.T) {
	verifyReq := []byte(`{"verification_id":"ver-1","code":"123456"}`)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(append([]byte("verified:"), body...))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/phone/verify", gzipBytes(t, verifyReq))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "verified:"+string(verifyReq), gunzipBody(t, rr.Body))
}

func TestWithGZip_InvalidGzipBodyRejected(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached for invalid gzip data")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		bytes.NewReader([]byte("not gzipped data")))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithGZip_CompressionShrinksRepetitivePayload(t *testing.T) {
	payload := strings.Repeat(`{"verification_id":"ver-1"},`, 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(payload)/10,
		"compressed size should be much smaller than original")
}

func TestWithGZip_PoolReuseAcrossRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
	middleware := withGZip(next)

	for i := 0; i < 5; i++ {
		code := []byte(`{"code":"12345` + string(rune('0'+i)) + `"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/phone/verify", gzipBytes(t, code))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(code), gunzipBody(t, rr.Body), "request %d: wrong body", i)
	}
}

func TestWithGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"active":true}`))
	})
	middleware := withGZip(next)

	const n = 50
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
}

func TestWithGZip_StatusCodeForwarded(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user_uid":"uid-new"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWithGZip_EmptyResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWrappedReadCloser(t *testing.T) {
	t.Run("Close fires the callback", func(t *testing.T) {
		closeCalled := false
		wrapped := &wrappedReadCloser{
			Reader:  strings.NewReader("body"),
			OnClose: func() { closeCalled = true },
		}

		require.NoError(t, wrapped.Close())
		assert.True(t, closeCalled)
	})

	t.Run("nil callback is fine", func(t *testing.T) {
		wrapped := &wrappedReadCloser{Reader: strings.NewReader("body")}
		assert.NoError(t, wrapped.Close())
	})
}
