// Package kit holds the transport plumbing shared by docsrv tools: the
// Endpoint abstraction, middleware chaining, MCP tool registration, and
// context accessors for request-scoped values.
package kit

import "context"

// Endpoint is a transport-agnostic request handler. Tool logic is written
// once as an Endpoint and bound to a transport (MCP, HTTP) at registration.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behavior (logging,
// call recording, timing).
type Middleware func(next Endpoint) Endpoint

// Chain composes middlewares so the first one listed is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
