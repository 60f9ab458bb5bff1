// CLAUDE:SUMMARY recommend: pass-through to the content recommendations API, four categories flattened in order.
package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// recommendationItem is one entry in an upstream category.
type recommendationItem struct {
	URL         string `json:"url"`
	AssetTitle  string `json:"assetTitle"`
	Abstract    string `json:"abstract"`
	DateCreated string `json:"dateCreated"`
}

// recommendationResponse is the upstream shape: four categories, each with
// its own item list. Journey items group pages under an intent.
type recommendationResponse struct {
	HighlyRated struct {
		Items []recommendationItem `json:"items"`
	} `json:"highlyRated"`
	Journey struct {
		Items []struct {
			Intent string               `json:"intent"`
			URLs   []recommendationItem `json:"urls"`
		} `json:"items"`
	} `json:"journey"`
	New struct {
		Items []recommendationItem `json:"items"`
	} `json:"new"`
	Similar struct {
		Items []recommendationItem `json:"items"`
	} `json:"similar"`
}

// Recommend returns pages related to a documentation URL, flattened across
// the four upstream categories (highly rated, journey, new, similar) with
// within-category order preserved. Like search, it never returns an error:
// failures degrade to a single synthetic result carrying the error text.
func (s *Service) Recommend(ctx context.Context, pageURL string) []RecommendationResult {
	s.logger.Debug("recommend: querying", "url", pageURL)

	q := url.Values{}
	q.Set("path", pageURL)
	q.Set("session", s.sessionID)

	result, err := s.api.Get(ctx, s.cfg.RecommendationsURL+"?"+q.Encode(), nil)
	if err != nil {
		if result != nil && result.StatusCode != 0 {
			return s.recommendError(fmt.Sprintf("Error getting recommendations - status code %d", result.StatusCode))
		}
		return s.recommendError(fmt.Sprintf("Error getting recommendations: %v", err))
	}

	var parsed recommendationResponse
	if err := json.Unmarshal(result.Body, &parsed); err != nil {
		return s.recommendError(fmt.Sprintf("Error parsing recommendations: %v", err))
	}

	results := []RecommendationResult{}

	for _, item := range parsed.HighlyRated.Items {
		results = append(results, RecommendationResult{
			URL:     item.URL,
			Title:   item.AssetTitle,
			Context: item.Abstract,
		})
	}

	for _, item := range parsed.Journey.Items {
		var context string
		if item.Intent != "" {
			context = "Intent: " + item.Intent
		}
		for _, page := range item.URLs {
			results = append(results, RecommendationResult{
				URL:     page.URL,
				Title:   page.AssetTitle,
				Context: context,
			})
		}
	}

	for _, item := range parsed.New.Items {
		var context string
		if item.DateCreated != "" {
			context = "New content added on " + item.DateCreated
		}
		results = append(results, RecommendationResult{
			URL:     item.URL,
			Title:   item.AssetTitle,
			Context: context,
		})
	}

	for _, item := range parsed.Similar.Items {
		context := item.Abstract
		if context == "" {
			context = "Similar content"
		}
		results = append(results, RecommendationResult{
			URL:     item.URL,
			Title:   item.AssetTitle,
			Context: context,
		})
	}

	s.logger.Debug("recommend: done", "url", pageURL, "results", len(results))
	return results
}

// recommendError builds the synthetic single-result degradation.
func (s *Service) recommendError(msg string) []RecommendationResult {
	s.logger.Error("recommend: " + msg)
	return []RecommendationResult{{Title: msg}}
}
