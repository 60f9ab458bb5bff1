package docs

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/docsrv/kit"
)

// RegisterMCP registers the three documentation tools on an MCP server.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	s.registerReadDocumentation(srv)
	s.registerSearchDocumentation(srv)
	s.registerRecommend(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// --- read_documentation ---

func (s *Service) registerReadDocumentation(srv *mcp.Server) {
	type req struct {
		URL        string `json:"url"`
		MaxLength  int    `json:"max_length"`
		StartIndex int    `json:"start_index"`
	}

	tool := &mcp.Tool{
		Name: "read_documentation",
		Description: "Fetch an AWS documentation page and convert it to markdown. " +
			"For long documents, call again with the start_index from the truncation note to continue.",
		InputSchema: inputSchema(map[string]any{
			"url":         map[string]any{"type": "string", "description": "URL of the documentation page to read"},
			"max_length":  map[string]any{"type": "integer", "description": "Maximum number of characters to return (default 5000)"},
			"start_index": map[string]any{"type": "integer", "description": "Character index to start from, for pagination (default 0)"},
		}, []string{"url"}),
	}

	endpoint := func(ctx context.Context, r any) (any, error) {
		p := r.(*req)
		return s.ReadDocumentation(ctx, p.URL, p.MaxLength, p.StartIndex)
	}

	decode := func(r *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var p req
		if err := json.Unmarshal(r.Params.Arguments, &p); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{
			Request: &p,
			EnrichCtx: func(ctx context.Context) context.Context {
				return kit.WithToolName(kit.WithSessionID(ctx, s.sessionID), "read_documentation")
			},
		}, nil
	}

	kit.RegisterMCPTool(srv, tool, s.wrap(endpoint), decode)
}

// --- search_documentation ---

func (s *Service) registerSearchDocumentation(srv *mcp.Server) {
	type req struct {
		SearchPhrase string `json:"search_phrase"`
		Limit        int    `json:"limit"`
	}

	tool := &mcp.Tool{
		Name: "search_documentation",
		Description: "Search AWS documentation. Results are ranked by relevance " +
			"and include context snippets when available.",
		InputSchema: inputSchema(map[string]any{
			"search_phrase": map[string]any{"type": "string", "description": "Search phrase"},
			"limit":         map[string]any{"type": "integer", "description": "Maximum number of results (default 10, max 100)"},
		}, []string{"search_phrase"}),
	}

	endpoint := func(ctx context.Context, r any) (any, error) {
		p := r.(*req)
		return s.SearchDocumentation(ctx, p.SearchPhrase, p.Limit), nil
	}

	decode := func(r *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var p req
		if err := json.Unmarshal(r.Params.Arguments, &p); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{
			Request: &p,
			EnrichCtx: func(ctx context.Context) context.Context {
				return kit.WithToolName(kit.WithSessionID(ctx, s.sessionID), "search_documentation")
			},
		}, nil
	}

	kit.RegisterMCPTool(srv, tool, s.wrap(endpoint), decode)
}

// --- recommend ---

func (s *Service) registerRecommend(srv *mcp.Server) {
	type req struct {
		URL string `json:"url"`
	}

	tool := &mcp.Tool{
		Name: "recommend",
		Description: "Get related-content recommendations for an AWS documentation page. " +
			"Categories: highly rated, new, similar, and journey (pages commonly viewed next).",
		InputSchema: inputSchema(map[string]any{
			"url": map[string]any{"type": "string", "description": "URL of the documentation page to get recommendations for"},
		}, []string{"url"}),
	}

	endpoint := func(ctx context.Context, r any) (any, error) {
		p := r.(*req)
		return s.Recommend(ctx, p.URL), nil
	}

	decode := func(r *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var p req
		if err := json.Unmarshal(r.Params.Arguments, &p); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{
			Request: &p,
			EnrichCtx: func(ctx context.Context) context.Context {
				return kit.WithToolName(kit.WithSessionID(ctx, s.sessionID), "recommend")
			},
		}, nil
	}

	kit.RegisterMCPTool(srv, tool, s.wrap(endpoint), decode)
}
