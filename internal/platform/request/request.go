// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers never
call chi directly for path values.
*/
package requestutil

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/tagfilter/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request, percent-decoded.

chi matches on the raw path when one is present, so "caf%C3%A9" arrives
encoded and is decoded here before any lookup sees it.
*/
func Param(request *http.Request, name string) string {
	raw := chi.URLParam(request, name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: A VALIDATION_ERROR naming the parameter when parsing fails
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(Param(request, name))
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}
	return value, nil
}

/*
PathSegments splits the wildcard ("*") route parameter into decoded, non-empty
path segments. Each segment is one contextual argument position.
*/
func PathSegments(request *http.Request) []string {
	raw := chi.URLParam(request, "*")
	if raw == "" {
		return nil
	}

	segments := make([]string, 0, 2)
	for _, part := range strings.Split(raw, "/") {
		if part == "" {
			continue
		}
		decoded, err := url.PathUnescape(part)
		if err != nil {
			decoded = part
		}
		segments = append(segments, decoded)
	}
	return segments
}
