// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// It answers with a 405 JSON error whose Allow header lists the methods
// registered for the request path. The route table is read with [chi.Walk]
// on first use, so the handler may be registered before the routes are.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	var (
		once   sync.Once
		routes []routeMethods
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			routes = collectRoutes(router)
		})

		w.Header().Set("Allow", strings.Join(allowedMethods(routes, r.URL.Path), ", "))
		writeError(w, r, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path))
	}
}

// RouteNotFound answers unknown paths with a 404 JSON error.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s", ErrRouteNotFound, r.URL.Path))
}

// routeMethods is one fully expanded route pattern and its methods.
type routeMethods struct {
	segments []routeSegment
	methods  []string
}

// routeSegment matches one path segment: a literal, a {param} with an
// optional regexp, or a trailing "*".
type routeSegment struct {
	literal  string
	param    bool
	pattern  *regexp.Regexp
	wildcard bool
}

func (s routeSegment) match(value string) bool {
	switch {
	case s.pattern != nil:
		return s.pattern.MatchString(value)
	case s.param:
		return value != ""
	default:
		return s.literal == value
	}
}

// collectRoutes walks router, mounted sub-routers included, and groups the
// registered methods by pattern.
func collectRoutes(router chi.Routes) []routeMethods {
	byPattern := make(map[string]*routeMethods)
	var order []string

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		key := strings.Join(splitPath(route), "/")
		rm, ok := byPattern[key]
		if !ok {
			rm = &routeMethods{segments: parsePattern(route)}
			byPattern[key] = rm
			order = append(order, key)
		}
		if !slices.Contains(rm.methods, method) {
			rm.methods = append(rm.methods, method)
		}
		return nil
	})

	routes := make([]routeMethods, 0, len(order))
	for _, key := range order {
		routes = append(routes, *byPattern[key])
	}
	return routes
}

// allowedMethods lists, in alphabetical order, the methods routable on path.
func allowedMethods(routes []routeMethods, path string) []string {
	parts := splitPath(path)

	var allowed []string
	for _, rm := range routes {
		if !matchSegments(rm.segments, parts) {
			continue
		}
		for _, method := range rm.methods {
			if !slices.Contains(allowed, method) {
				allowed = append(allowed, method)
			}
		}
	}

	slices.Sort(allowed)
	return allowed
}

func matchSegments(segments []routeSegment, parts []string) bool {
	for i, segment := range segments {
		if segment.wildcard {
			return true
		}
		if i >= len(parts) || !segment.match(parts[i]) {
			return false
		}
	}
	return len(segments) == len(parts)
}

func parsePattern(route string) []routeSegment {
	parts := splitPath(route)
	segments := make([]routeSegment, 0, len(parts))

	for _, part := range parts {
		switch {
		case part == "*":
			segments = append(segments, routeSegment{wildcard: true})
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			segment := routeSegment{param: true}
			if _, expr, ok := strings.Cut(part[1:len(part)-1], ":"); ok {
				segment.pattern = regexp.MustCompile("^(?:" + expr + ")$")
			}
			segments = append(segments, segment)
		default:
			segments = append(segments, routeSegment{literal: part})
		}
	}
	return segments
}

// splitPath drops empty segments so that "/accounts", "/accounts/" and
// chi's joined "/accounts//{id}" compare equal.
func splitPath(path string) []string {
	return slices.DeleteFunc(strings.Split(path, "/"), func(s string) bool { return s == "" })
}
