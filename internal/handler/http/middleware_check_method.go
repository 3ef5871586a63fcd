// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Where chi would answer 405 for a known path with an unhandled method, it
// answers 404 instead, so an unsupported method does not reveal that the
// route exists. When the method turns out to be registered after all, the
// request goes back through the router's normal pipeline.
//
// Route lookup compares patterns against the raw request path; wildcard
// segments are not expanded.
//
//	router := chi.NewRouter()
//	router.Post("/api/auth/login", h.login)
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		// метод не зарегистрирован: 404 вместо 405
		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
