package docs

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// pageService builds a Service whose documentation domain points at a test
// server, so page URLs like srv.URL+"/guide/page.html" pass validation.
func pageService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test url: %v", err)
	}
	svc := New(&Config{DocsDomain: u.Host}, slog.Default(), WithSessionID("test-session"))
	return svc, srv
}

// apiService builds a Service whose search and recommendations endpoints
// point at a test server.
func apiService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := New(&Config{
		SearchURL:          srv.URL + "/search",
		RecommendationsURL: srv.URL + "/recommendations",
	}, slog.Default(), WithSessionID("test-session"))
	return svc, srv
}

// extractWindow strips the response header and the optional truncation note,
// returning the raw content window and whether the result was truncated.
func extractWindow(t *testing.T, out, pageURL string) (string, bool) {
	t.Helper()
	prefix := fmt.Sprintf("AWS Documentation from %s:\n\n", pageURL)
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("missing result header in %q", out)
	}
	rest := strings.TrimPrefix(out, prefix)
	if i := strings.Index(rest, "\n\n<e>Content truncated."); i >= 0 {
		return rest[:i], true
	}
	return rest, false
}

func TestValidateDocURL(t *testing.T) {
	svc := New(nil, slog.Default())

	cases := []struct {
		name string
		url  string
		ok   bool
	}{
		{"valid https", "https://docs.aws.amazon.com/s3/latest/userguide/Welcome.html", true},
		{"valid http", "http://docs.aws.amazon.com/lambda/intro.html", true},
		{"host case-insensitive", "https://DOCS.AWS.AMAZON.COM/ec2/index.html", true},
		{"wrong domain", "https://example.com/s3/Welcome.html", false},
		{"lookalike domain", "https://docs.aws.amazon.com.evil.io/x.html", false},
		{"missing extension", "https://docs.aws.amazon.com/s3/latest/userguide/", false},
		{"wrong extension", "https://docs.aws.amazon.com/s3/guide.pdf", false},
		{"ftp scheme", "ftp://docs.aws.amazon.com/guide.html", false},
		{"not a url", "://///", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidateDocURL(tc.url)
			if tc.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestNormalizeDocURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://docs.aws.amazon.com/s3/guide.html#section-2", "https://docs.aws.amazon.com/s3/guide.html"},
		{"https://DOCS.AWS.Amazon.COM/s3/guide.html", "https://docs.aws.amazon.com/s3/guide.html"},
		{"https://docs.aws.amazon.com/s3/guide.html", "https://docs.aws.amazon.com/s3/guide.html"},
	}
	for _, tc := range cases {
		if got := normalizeDocURL(tc.in); got != tc.want {
			t.Errorf("normalizeDocURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNew_SessionGenerated(t *testing.T) {
	// WHAT: Each service instance carries its own session identifier.
	// WHY: Upstream request correlation; one ID per process lifetime.
	a := New(nil, slog.Default())
	b := New(nil, slog.Default())
	if a.SessionID() == "" {
		t.Fatal("session ID should be generated")
	}
	if a.SessionID() == b.SessionID() {
		t.Error("two instances share a session ID")
	}
}
