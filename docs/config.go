package docs

import (
	"time"
)

// DefaultUserAgent identifies the server to the documentation APIs.
const DefaultUserAgent = "ModelContextProtocol/1.0 (AWS Documentation Server)"

// Config configures the docs service.
type Config struct {
	// DocsDomain is the only host read_documentation accepts.
	DocsDomain string

	// DocsExtension is the required path suffix for documentation pages.
	DocsExtension string

	// SearchURL is the documentation search API endpoint.
	SearchURL string

	// RecommendationsURL is the content recommendations API endpoint.
	RecommendationsURL string

	// UserAgent sent on every outbound request.
	UserAgent string

	// Timeout bounds each outbound HTTP call.
	Timeout time.Duration

	// MaxBytes caps outbound response bodies.
	MaxBytes int64
}

func (c *Config) defaults() {
	if c.DocsDomain == "" {
		c.DocsDomain = "docs.aws.amazon.com"
	}
	if c.DocsExtension == "" {
		c.DocsExtension = ".html"
	}
	if c.SearchURL == "" {
		c.SearchURL = "https://proxy.search.docs.aws.amazon.com/search"
	}
	if c.RecommendationsURL == "" {
		c.RecommendationsURL = "https://contentrecs-api.docs.aws.amazon.com/v1/recommendations"
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 10 * 1024 * 1024
	}
}
