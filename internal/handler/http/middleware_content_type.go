// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"mime"
	"net/http"
)

// withJSONContentType rejects requests whose body is not declared as
// application/json. Media type parameters such as charset are accepted.
func withJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			writeError(w, r, fmt.Errorf("%w: got %q", ErrUnsupportedMediaType, contentType))
			return
		}

		next.ServeHTTP(w, r)
	})
}
