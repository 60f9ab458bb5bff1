// CLAUDE:SUMMARY read_documentation: cache-aware page fetch, markdown conversion, rune-offset pagination windows.
package docs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/hazyhaar/docsrv/convert"
)

const (
	// DefaultMaxLength is the window size when the caller does not set one.
	DefaultMaxLength = 5000
	// MaxMaxLength bounds the window size a caller may request.
	MaxMaxLength = 999999
)

// ReadDocumentation fetches a documentation page, converts it to markdown,
// and returns the [startIndex, startIndex+maxLength) character window.
//
// The first successful read of a URL converts and caches the page for the
// process lifetime; later reads serve windows from the cache without
// touching the network. When the window does not reach the end of the
// document, the returned text ends with a note naming the start_index for
// the next call.
func (s *Service) ReadDocumentation(ctx context.Context, url string, maxLength, startIndex int) (string, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if maxLength > MaxMaxLength {
		return "", fmt.Errorf("%w: max_length must be at most %d", ErrInvalidInput, MaxMaxLength)
	}
	if startIndex < 0 {
		return "", fmt.Errorf("%w: start_index must not be negative", ErrInvalidInput)
	}

	if err := s.ValidateDocURL(url); err != nil {
		s.logger.Warn("read: rejected URL", "url", url, "error", err)
		return "", err
	}

	key := normalizeDocURL(url)
	doc := s.cachedDocument(key)
	if doc == nil {
		var err error
		doc, err = s.fetchAndConvert(ctx, url)
		if err != nil {
			return "", err
		}
		s.storeDocument(key, doc)
	} else {
		s.logger.Debug("read: cache hit", "url", url)
	}

	window, truncated := paginate(url, doc.Content, startIndex, maxLength)
	s.logger.Debug("read: window served",
		"url", url, "start_index", startIndex, "max_length", maxLength,
		"total_length", doc.TotalLength, "truncated", truncated)
	return window, nil
}

// fetchAndConvert retrieves the raw page and runs markdown conversion.
// Non-HTML content types are treated as already-final text.
func (s *Service) fetchAndConvert(ctx context.Context, url string) (*ConvertedDocument, error) {
	header := http.Header{}
	header.Set("X-MCP-Session-Id", s.sessionID)

	result, err := s.pages.Get(ctx, url+"?session="+s.sessionID, header)
	if err != nil {
		if isTimeout(err) {
			s.logger.Error("read: fetch timed out", "url", url)
			return nil, fmt.Errorf("%w: %s", ErrUpstreamTimeout, url)
		}
		if result != nil && result.StatusCode != 0 {
			s.logger.Error("read: fetch failed", "url", url, "status", result.StatusCode)
			return nil, fmt.Errorf("%w: %s: status code %d", ErrFetchFailed, url, result.StatusCode)
		}
		s.logger.Error("read: fetch failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}

	content := string(result.Body)
	if convert.IsHTML(result.ContentType, result.Body) {
		converted, err := convert.ToMarkdown(result.Body, url)
		if err != nil {
			s.logger.Error("read: conversion failed", "url", url, "error", err)
			return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
		}
		content = converted.Markdown
	}

	doc := &ConvertedDocument{
		SourceURL:   url,
		Content:     content,
		TotalLength: len([]rune(content)),
	}
	s.logger.Info("read: page converted", "url", url, "total_length", doc.TotalLength)
	return doc, nil
}

// paginate slices the converted content by character offsets and formats
// the response. Requests past the end return a sentinel message, never an
// error; an empty document is reported explicitly so the caller can tell
// "nothing came back" from a silently empty page.
func paginate(url, content string, startIndex, maxLength int) (string, bool) {
	header := fmt.Sprintf("AWS Documentation from %s:\n\n", url)

	if content == "" {
		return header + "<e>No content found on this page.</e>", false
	}

	runes := []rune(content)
	total := len(runes)
	if startIndex >= total {
		return header + "<e>No more content available.</e>", false
	}

	end := startIndex + maxLength
	if end > total {
		end = total
	}
	window := string(runes[startIndex:end])

	if end < total {
		note := fmt.Sprintf(
			"\n\n<e>Content truncated. Call the read_documentation tool with start_index=%d to get more content.</e>",
			end)
		return header + window + note, true
	}
	return header + window, false
}

// isTimeout reports whether err is a deadline or client timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
