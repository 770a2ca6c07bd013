// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

const (
	headerFrameOptions       = "X-Frame-Options"
	headerXSSProtection      = "X-XSS-Protection"
	headerContentTypeOptions = "X-Content-Type-Options"
	headerCSP                = "Content-Security-Policy"
	headerReferrerPolicy     = "Referrer-Policy"
	headerAllowOrigin        = "Access-Control-Allow-Origin"
	headerHSTS               = "Strict-Transport-Security"
)

var securityHeaders = map[string]string{
	headerFrameOptions:       "SAMEORIGIN",
	headerXSSProtection:      "1; mode=block",
	headerContentTypeOptions: "nosniff",
	headerCSP:                "default-src 'self'; object-src 'none'",
	headerReferrerPolicy:     "strict-origin-when-cross-origin",
}

const hstsValue = "max-age=31536000; includeSubDomains"

// withSecurityHeaders decorates every response, including redirects, errors
// and CORS preflight answers, with the hardening headers.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		for name, value := range securityHeaders {
			header.Set(name, value)
		}

		if origin := h.allowedOrigin(r); origin != "" {
			header.Set(headerAllowOrigin, origin)
			if origin != "*" {
				header.Add("Vary", "Origin")
			}
		}

		if isHTTPS(r) {
			header.Set(headerHSTS, hstsValue)
		}

		next.ServeHTTP(w, r)
	})
}

// withHTTPSRedirect sends plain HTTP requests to their https:// URL when
// ForceHTTPS is enabled.
func (h *Handler) withHTTPSRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.security.ForceHTTPS || isHTTPS(r) {
			next.ServeHTTP(w, r)
			return
		}

		target := "https://" + r.Host + r.URL.RequestURI()
		http.Redirect(w, r, target, http.StatusFound)
	})
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.security.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Location", traceIDHeader},
		MaxAge:         300,
	})
}

// allowedOrigin returns the value of Access-Control-Allow-Origin for r,
// or "" when the request origin is not permitted.
func (h *Handler) allowedOrigin(r *http.Request) string {
	if slices.Contains(h.security.AllowedOrigins, "*") {
		return "*"
	}

	origin := r.Header.Get("Origin")
	if origin != "" && slices.Contains(h.security.AllowedOrigins, origin) {
		return origin
	}

	return ""
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
