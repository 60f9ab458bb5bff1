// CLAUDE:SUMMARY Sentinel errors for the docs service: invalid URL, fetch failure, upstream timeout.
package docs

import "errors"

// ErrInvalidURL is returned when a URL fails the documentation domain or
// file-extension policy. No network request is made.
var ErrInvalidURL = errors.New("docs: invalid documentation URL")

// ErrFetchFailed is returned when retrieving a documentation page fails
// (network error or non-success status).
var ErrFetchFailed = errors.New("docs: failed to fetch documentation page")

// ErrUpstreamTimeout is returned when a documentation page fetch exceeds
// the configured timeout.
var ErrUpstreamTimeout = errors.New("docs: upstream request timed out")

// ErrInvalidInput is returned when tool arguments fail validation.
var ErrInvalidInput = errors.New("docs: invalid input")
