// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so withLogging can read
// the status code and body size after the downstream handler returned,
// without buffering the response. Only the first WriteHeader reaches the
// underlying writer, matching the stdlib contract.
type responseWriter struct {
	http.ResponseWriter

	// status holds the code of the first WriteHeader call, zero before it.
	status int

	wroteHeader bool

	// size accumulates bytes written to the body across Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return // повторные вызовы игнорируются
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b and counts the bytes. A Write without a prior
// WriteHeader implies status 200, as in the stdlib writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
