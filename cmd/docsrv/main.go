// CLAUDE:SUMMARY Entry point for the AWS documentation MCP server — chi router, streamable HTTP transport, optional call log.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/docsrv/calllog"
	"github.com/hazyhaar/docsrv/docs"
)

const serverInstructions = `This server provides tools to access public AWS documentation, search for content, and get recommendations.

Tool selection:
- search_documentation: find documentation about a service or feature
- read_documentation: read a specific documentation URL (paginate long pages with start_index)
- recommend: discover related pages, including the New category for recently released content

Always cite the documentation URL when providing information to users.`

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	host := flag.String("host", "0.0.0.0", "host to bind to")
	flag.Parse()

	logLevel := env("LOG_LEVEL", "info")
	callLogPath := env("CALL_LOG_DB", "")

	// Logging.
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Endpoint overrides, used for alternate partitions and tests.
	cfg := &docs.Config{
		DocsDomain:         env("DOCS_DOMAIN", ""),
		SearchURL:          env("SEARCH_API_URL", ""),
		RecommendationsURL: env("RECOMMENDATIONS_API_URL", ""),
	}

	var opts []docs.Option

	// Optional call log.
	if callLogPath != "" {
		db, err := sql.Open("sqlite", callLogPath)
		if err != nil {
			slog.Error("call log db", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		store := calllog.NewStore(db)
		if err := store.Init(ctx); err != nil {
			slog.Error("call log init", "error", err)
			os.Exit(1)
		}
		opts = append(opts, docs.WithMiddleware(calllog.Middleware(store, logger)))
	}

	svc := docs.New(cfg, logger, opts...)
	slog.Info("session started", "session_id", svc.SessionID())

	mcpSrv := mcp.NewServer(&mcp.Implementation{
		Name:    "docsrv",
		Version: "1.0.0",
	}, &mcp.ServerOptions{Instructions: serverInstructions})
	svc.RegisterMCP(mcpSrv)

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpSrv
	}, nil)

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/mcp", handler)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		slog.Info("documentation MCP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
