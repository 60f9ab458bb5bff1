package docs

// SearchResult is one ranked hit from the documentation search API.
type SearchResult struct {
	RankOrder int    `json:"rank_order"` // 1 = most relevant
	URL       string `json:"url"`
	Title     string `json:"title"`
	Context   string `json:"context,omitempty"` // excerpt, when available
}

// RecommendationResult is one related page from the recommendations API.
type RecommendationResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Context string `json:"context,omitempty"`
}

// ConvertedDocument is a fetched page after markdown conversion. Entries
// are immutable once stored in the cache; TotalLength counts characters
// (runes), matching the pagination window semantics.
type ConvertedDocument struct {
	SourceURL   string
	Content     string
	TotalLength int
}
