// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fetch retrieves remote base documents over HTTP.
//
// The primary abstraction is [Fetcher], which decouples the command layer
// from the transport. The package ships an HTTP implementation
// ([NewHTTPFetcher]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package fetch

import (
	"context"
	"strings"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fetcher_mock.go -package=mock

// Fetcher downloads a remote document and decodes it into a plain data
// tree. Implementations are responsible for transport concerns: timeouts,
// retries, and mapping protocol errors to the sentinel values defined in
// this package.
type Fetcher interface {
	// Fetch retrieves the document at rawURL. The document format is
	// inferred from the URL path extension, defaulting to JSON. Returns
	// an error if the request fails, the server responds with a non-2xx
	// status, or the body cannot be decoded.
	Fetch(ctx context.Context, rawURL string) (map[string]any, error)
}

// IsURL reports whether s names a remote document rather than a local
// file path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
