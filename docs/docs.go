// Package docs exposes the AWS documentation tool surface: paginated page
// reads, search, and content recommendations.
//
// The service owns the process-lifetime fetch cache and the session
// identifier attached to every upstream request. It is constructed
// explicitly and threaded through each tool handler; there is no package
// level state.
//
// Usage:
//
//	svc := docs.New(nil, logger)
//	svc.RegisterMCP(mcpServer)
package docs

import (
	"log/slog"
	"sync"

	"github.com/hazyhaar/docsrv/docs/internal/fetch"
	"github.com/hazyhaar/docsrv/idgen"
	"github.com/hazyhaar/docsrv/kit"
)

// Service implements the three documentation tools.
type Service struct {
	cfg       Config
	logger    *slog.Logger
	pages     *fetch.Fetcher // documentation pages, redirects kept on-domain
	api       *fetch.Fetcher // search and recommendations endpoints
	sessionID string
	mw        kit.Middleware

	mu    sync.RWMutex
	cache map[string]*ConvertedDocument
}

// Option configures a Service.
type Option func(*Service)

// WithSessionID pins the session identifier instead of generating one.
func WithSessionID(id string) Option {
	return func(s *Service) { s.sessionID = id }
}

// WithMiddleware wraps every tool endpoint (call recording, timing).
func WithMiddleware(mw kit.Middleware) Option {
	return func(s *Service) { s.mw = mw }
}

// New creates the service. cfg may be nil for defaults. The session
// identifier is generated here, once per process.
func New(cfg *Config, logger *slog.Logger, opts ...Option) *Service {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		cfg:       *cfg,
		logger:    logger,
		sessionID: idgen.New(),
		cache:     make(map[string]*ConvertedDocument),
	}
	for _, o := range opts {
		o(s)
	}

	s.pages = fetch.New(fetch.Config{
		Timeout:      cfg.Timeout,
		MaxBytes:     cfg.MaxBytes,
		UserAgent:    cfg.UserAgent,
		URLValidator: s.ValidateDocURL,
	})
	s.api = fetch.New(fetch.Config{
		Timeout:   cfg.Timeout,
		MaxBytes:  cfg.MaxBytes,
		UserAgent: cfg.UserAgent,
	})

	return s
}

// SessionID returns the identifier attached to upstream requests.
func (s *Service) SessionID() string {
	return s.sessionID
}

// cachedDocument returns the converted document for a normalized URL, or nil.
func (s *Service) cachedDocument(key string) *ConvertedDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key]
}

// storeDocument publishes a fully formed document. Concurrent first
// fetches of the same URL may race; the entry is immutable either way, so
// last write wins and readers never observe a partial document.
func (s *Service) storeDocument(key string, doc *ConvertedDocument) {
	s.mu.Lock()
	s.cache[key] = doc
	s.mu.Unlock()
}

// wrap applies the configured middleware to a tool endpoint.
func (s *Service) wrap(e kit.Endpoint) kit.Endpoint {
	if s.mw == nil {
		return e
	}
	return s.mw(e)
}
