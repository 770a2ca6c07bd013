// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/PiotMik/devops-capstone-project/internal/config"
	"github.com/PiotMik/devops-capstone-project/internal/mock"
	"github.com/PiotMik/devops-capstone-project/models"
)

func newRouter(t *testing.T, security config.Security) (*mock.MockAccountService, *mock.MockAppInfoService, http.Handler) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	return accounts, appInfo, newTestHandler(accounts, appInfo, security).Init()
}

func TestIndex(t *testing.T) {
	_, appInfo, router := newRouter(t, defaultSecurity())
	appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{
		Name:    "Account REST API Service",
		Version: "1.0",
		Paths:   "/accounts",
	})

	rr := do(t, router, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Account REST API Service","version":"1.0","paths":"/accounts"}`, rr.Body.String())
}

func TestHealth(t *testing.T) {
	_, _, router := newRouter(t, defaultSecurity())

	rr := do(t, router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{http.MethodPatch, "/accounts/1", "DELETE, GET, PUT"},
		{http.MethodPost, "/accounts/1", "DELETE, GET, PUT"},
		{http.MethodDelete, "/accounts", "GET, POST"},
		{http.MethodPut, "/accounts", "GET, POST"},
		{http.MethodPatch, "/accounts", "GET, POST"},
		{http.MethodDelete, "/accounts/", "GET, POST"},
		{http.MethodPut, "/accounts/", "GET, POST"},
		{http.MethodPost, "/", "GET"},
		{http.MethodDelete, "/health", "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			_, _, router := newRouter(t, defaultSecurity())

			rr := do(t, router, tt.method, tt.path, nil, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			decodeErrorResponse(t, rr)
		})
	}
}

func TestAllowedMethods(t *testing.T) {
	_, _, router := newRouter(t, defaultSecurity())
	routes := collectRoutes(router.(chi.Routes))

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"GET"}},
		{"/health", []string{"GET"}},
		{"/accounts", []string{"GET", "POST"}},
		{"/accounts/", []string{"GET", "POST"}},
		{"/accounts/42", []string{"DELETE", "GET", "PUT"}},
		{"/accounts/abc", nil},
		{"/accounts/42/extra", nil},
		{"/missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, allowedMethods(routes, tt.path))
		})
	}
}

func TestRouteNotFound(t *testing.T) {
	_, _, router := newRouter(t, defaultSecurity())

	rr := do(t, router, http.MethodGet, "/no/such/route", nil, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeErrorResponse(t, rr)
	assert.Contains(t, resp.Message, "/no/such/route")
}

func assertSecurityHeaders(t *testing.T, header http.Header) {
	t.Helper()
	assert.Equal(t, "SAMEORIGIN", header.Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", header.Get("X-XSS-Protection"))
	assert.Equal(t, "nosniff", header.Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'self'; object-src 'none'", header.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", header.Get("Referrer-Policy"))
	assert.Equal(t, "*", header.Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"unknown route", http.MethodGet, "/missing", http.StatusNotFound},
		{"method not allowed", http.MethodPatch, "/accounts/1", http.StatusMethodNotAllowed},
		{"unsupported media type", http.MethodPost, "/accounts", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, router := newRouter(t, defaultSecurity())

			rr := do(t, router, tt.method, tt.path, nil, "")

			assert.Equal(t, tt.status, rr.Code)
			assertSecurityHeaders(t, rr.Header())
			assert.Empty(t, rr.Header().Get("Strict-Transport-Security"), "no HSTS over plain http")
		})
	}
}

func TestSecurityHeaders_RestrictedOrigins(t *testing.T) {
	_, _, router := newRouter(t, config.Security{AllowedOrigins: []string{"https://app.example.com"}})

	t.Run("allowed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rr := serve(t, router, req)

		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin gets nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := serve(t, router, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORSPreflight(t *testing.T) {
	_, _, router := newRouter(t, defaultSecurity())

	req := httptest.NewRequest(http.MethodOptions, "/accounts", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := serve(t, router, req)

	assert.Less(t, rr.Code, http.StatusMultipleChoices)
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assertSecurityHeaders(t, rr.Header())
}

func TestForceHTTPS(t *testing.T) {
	security := defaultSecurity()
	security.ForceHTTPS = true

	t.Run("plain http is redirected", func(t *testing.T) {
		_, _, router := newRouter(t, security)

		req := httptest.NewRequest(http.MethodGet, "http://accounts.example.com/accounts?page=2", nil)
		rr := serve(t, router, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://accounts.example.com/accounts?page=2", rr.Header().Get("Location"))
		assertSecurityHeaders(t, rr.Header())
	})

	t.Run("tls request is served with HSTS", func(t *testing.T) {
		_, _, router := newRouter(t, security)

		req := httptest.NewRequest(http.MethodGet, "https://accounts.example.com/health", nil)
		req.TLS = &tls.ConnectionState{}
		rr := serve(t, router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "max-age=31536000; includeSubDomains", rr.Header().Get("Strict-Transport-Security"))
	})

	t.Run("forwarded proto counts as https", func(t *testing.T) {
		_, _, router := newRouter(t, security)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rr := serve(t, router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Strict-Transport-Security"))
	})
}

func TestForceHTTPS_DisabledByDefault(t *testing.T) {
	_, _, router := newRouter(t, defaultSecurity())

	rr := do(t, router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCompression(t *testing.T) {
	_, _, router := newRouter(t, defaultSecurity())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := serve(t, router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}
