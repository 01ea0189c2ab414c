package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// Transport names accepted by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ServeOptions selects the MCP transport.
type ServeOptions struct {
	Transport string
	Port      string
}

// Serve runs s on the configured transport until ctx is cancelled or the
// transport fails. stdio is the default.
func Serve(ctx context.Context, s *server.MCPServer, opts ServeOptions, logger *Logger) error {
	switch opts.Transport {
	case "", TransportStdio:
		logger.Info().Str("transport", TransportStdio).Msg("serving MCP")
		stdio := server.NewStdioServer(s)
		return stdio.Listen(ctx, os.Stdin, os.Stdout)
	case TransportHTTP:
		return serveHTTP(ctx, s, opts.Port, logger)
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", opts.Transport, TransportStdio, TransportHTTP)
	}
}

func serveHTTP(ctx context.Context, s *server.MCPServer, port string, logger *Logger) error {
	if port == "" {
		port = "4243"
	}
	httpServer := server.NewStreamableHTTPServer(s, server.WithStateLess(true))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("transport", TransportHTTP).Str("port", port).Msg("serving MCP")
		if err := httpServer.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
