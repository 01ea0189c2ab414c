package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/config"
	"github.com/philipdalen/mcp-workspace/internal/graph"
	"github.com/philipdalen/mcp-workspace/internal/outlook"
)

const notAuthenticatedMessage = "Please run 'outlook-mcp --auth --client_id <CLIENT ID>' before using for the first time."

func main() {
	fs := pflag.NewFlagSet("outlook-mcp", pflag.ExitOnError)
	auth := fs.Bool("auth", false, "Sign in with the device code flow and exit")
	force := fs.Bool("force", false, "Discard the stored sign-in before authenticating (implies --auth)")
	clientID := fs.String("client_id", "", "Azure application (client) ID")
	tenantID := fs.String("tenant_id", "", "Azure tenant ID (default common)")
	configFile := fs.String("config", "outlook-mcp.toml", "Path to config file")
	transport := fs.String("transport", "", "MCP transport: stdio or http")
	port := fs.String("port", "", "Port for the http transport")
	fs.Parse(os.Args[1:])

	cfg, err := config.LoadFromFiles(config.AppOutlook, *configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.ApplyFlagOverrides(cfg, config.Overrides{
		Transport: *transport,
		Port:      *port,
		ClientID:  *clientID,
		TenantID:  *tenantID,
	})

	common.LoadVersionFromFile()
	logger := common.NewLoggerFromConfig(cfg.Logging)

	if cfg.Outlook.ClientID == "" {
		fmt.Fprintln(os.Stderr, "Client ID is required. Use --client_id or set SIMPLY_OUTLOOK_MCP_CLIENT_ID.")
		os.Exit(1)
	}

	recordPath := cfg.Outlook.AuthRecordPath
	if recordPath == "" {
		if recordPath, err = graph.DefaultRecordPath(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	authenticator := graph.NewAuthenticator(graph.AuthOptions{
		ClientID:  cfg.Outlook.ClientID,
		TenantID:  cfg.Outlook.TenantID,
		Authority: cfg.Outlook.AuthorityURL,
	}, graph.NewRecordStore(recordPath), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *auth || *force {
		if err := login(ctx, authenticator, *force); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ts, rec, err := authenticator.Silent(ctx)
	if err != nil {
		if !errors.Is(err, graph.ErrNotAuthenticated) {
			logger.Error().Str("error", err.Error()).Msg("failed to restore sign-in")
		}
		fmt.Fprintln(os.Stderr, notAuthenticatedMessage)
		os.Exit(1)
	}
	logger.Info().Str("user", rec.Username).Msg("authenticated")

	svc := graph.NewService(graph.NewClient(cfg.Outlook.GraphURL, ts, logger), logger)
	dispatcher, err := outlook.NewDispatcher(outlook.NewHandlers(svc, logger), cfg.Tools.Allow, cfg.Tools.Deny, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)
	count := dispatcher.Mount(mcpServer)
	logger.Info().Int("tools", count).Str("version", common.GetFullVersion()).Msg("outlook-mcp starting")

	if err := common.Serve(ctx, mcpServer, common.ServeOptions{
		Transport: cfg.Server.Transport,
		Port:      cfg.Server.Port,
	}, logger); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// login runs the device code flow, printing the sign-in instructions to
// stderr.
func login(ctx context.Context, a *graph.Authenticator, force bool) error {
	if force {
		if err := a.Logout(); err != nil {
			return fmt.Errorf("failed to discard stored sign-in: %w", err)
		}
	} else if _, rec, err := a.Silent(ctx); err == nil {
		fmt.Fprintf(os.Stderr, "Already authenticated as %s. Use --force to sign in again.\n", rec.Username)
		return nil
	}

	flow, err := a.StartDeviceFlow(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, flow.Message)

	rec, err := flow.Wait(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Authenticated as %s.\n", rec.Username)
	return nil
}
