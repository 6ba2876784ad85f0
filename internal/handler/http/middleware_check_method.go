// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not. This
// handler turns that into a 404 so a probe cannot distinguish "route exists
// with a different method" from "no such route". Requests whose method IS
// registered for an exactly-matching pattern fall through to the router's
// normal pipeline.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
