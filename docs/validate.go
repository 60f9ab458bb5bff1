// CLAUDE:SUMMARY URL admission gate for read_documentation: scheme, documentation host, .html extension.
package docs

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateDocURL checks that rawURL is an addressable documentation page:
// http or https, host exactly the documentation domain, path ending with
// the documentation extension. This runs before any network access and is
// the single admission gate for read_documentation.
func (s *Service) ValidateDocURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if !strings.EqualFold(u.Host, s.cfg.DocsDomain) {
		return fmt.Errorf("%w: URL must be from the %s domain", ErrInvalidURL, s.cfg.DocsDomain)
	}
	if !strings.HasSuffix(u.Path, s.cfg.DocsExtension) {
		return fmt.Errorf("%w: URL must end with %s", ErrInvalidURL, s.cfg.DocsExtension)
	}
	return nil
}

// normalizeDocURL produces the cache key for a page URL: fragment dropped,
// host lowercased, query preserved.
func normalizeDocURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
