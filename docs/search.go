// CLAUDE:SUMMARY search_documentation: pass-through to the docs search API with synthetic error-result degradation.
package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// DefaultSearchLimit is the result count when the caller does not set one.
	DefaultSearchLimit = 10
	// MaxSearchLimit bounds the result count a caller may request.
	MaxSearchLimit = 100
)

// searchRequest is the upstream search API request body.
type searchRequest struct {
	TextQuery struct {
		Input string `json:"input"`
	} `json:"textQuery"`
	ContextAttributes    []searchContextAttribute `json:"contextAttributes"`
	AcceptSuggestionBody string                   `json:"acceptSuggestionBody"`
	Locales              []string                 `json:"locales"`
}

type searchContextAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// searchResponse is the subset of the upstream response the service reads.
type searchResponse struct {
	Suggestions []struct {
		TextExcerptSuggestion *struct {
			Link           string `json:"link"`
			Title          string `json:"title"`
			Summary        string `json:"summary"`
			SuggestionBody string `json:"suggestionBody"`
		} `json:"textExcerptSuggestion"`
	} `json:"suggestions"`
}

// SearchDocumentation queries the documentation search API and returns
// ranked results. It never returns an error: upstream failures degrade to
// a single synthetic result whose title carries the error text, keeping
// the return type uniform for the calling agent.
func (s *Service) SearchDocumentation(ctx context.Context, searchPhrase string, limit int) []SearchResult {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	s.logger.Debug("search: querying", "phrase", searchPhrase, "limit", limit)

	var body searchRequest
	body.TextQuery.Input = searchPhrase
	body.ContextAttributes = []searchContextAttribute{{Key: "domain", Value: s.cfg.DocsDomain}}
	body.AcceptSuggestionBody = "RawText"
	body.Locales = []string{"en_us"}

	payload, err := json.Marshal(body)
	if err != nil {
		return s.searchError(fmt.Sprintf("Error searching AWS docs: %v", err))
	}

	header := http.Header{}
	header.Set("X-MCP-Session-Id", s.sessionID)

	result, err := s.api.Post(ctx, s.cfg.SearchURL+"?session="+s.sessionID, payload, header)
	if err != nil {
		if result != nil && result.StatusCode != 0 {
			return s.searchError(fmt.Sprintf("Error searching AWS docs - status code %d", result.StatusCode))
		}
		return s.searchError(fmt.Sprintf("Error searching AWS docs: %v", err))
	}

	var parsed searchResponse
	if err := json.Unmarshal(result.Body, &parsed); err != nil {
		return s.searchError(fmt.Sprintf("Error parsing search results: %v", err))
	}

	results := []SearchResult{}
	for _, suggestion := range parsed.Suggestions {
		if len(results) >= limit {
			break
		}
		ts := suggestion.TextExcerptSuggestion
		if ts == nil {
			continue
		}
		excerpt := ts.Summary
		if excerpt == "" {
			excerpt = ts.SuggestionBody
		}
		results = append(results, SearchResult{
			RankOrder: len(results) + 1,
			URL:       ts.Link,
			Title:     ts.Title,
			Context:   excerpt,
		})
	}

	s.logger.Debug("search: done", "phrase", searchPhrase, "results", len(results))
	return results
}

// searchError builds the synthetic single-result degradation for search
// failures. Deliberate contract: the tool always returns a result list.
func (s *Service) searchError(msg string) []SearchResult {
	s.logger.Error("search: " + msg)
	return []SearchResult{{RankOrder: 1, Title: msg}}
}
