package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/config"
	"github.com/philipdalen/mcp-workspace/internal/teamwork"
)

// flagAliases maps short flag names onto their canonical form.
var flagAliases = map[string]string{
	"domain":     "teamwork-domain",
	"user":       "teamwork-username",
	"pass":       "teamwork-password",
	"project":    "teamwork-project-id",
	"root":       "solution-root",
	"allow":      "allow-tools",
	"deny":       "deny-tools",
	"no-logging": "disable-logging",
}

func normalizeAlias(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

func main() {
	fs := pflag.NewFlagSet("teamwork-mcp", pflag.ExitOnError)
	fs.SetNormalizeFunc(normalizeAlias)

	var o config.Overrides
	fs.StringVar(&o.Domain, "teamwork-domain", "", "Teamwork domain, e.g. acme or acme.teamwork.com (alias --domain)")
	fs.StringVar(&o.Username, "teamwork-username", "", "Teamwork username (alias --user)")
	fs.StringVar(&o.Password, "teamwork-password", "", "Teamwork password or API key (alias --pass)")
	fs.StringVar(&o.ProjectID, "teamwork-project-id", "", "Default Teamwork project ID (alias --project)")
	fs.StringVar(&o.SolutionRoot, "solution-root", "", "Directory holding the .teamwork file (alias --root)")
	fs.StringVar(&o.Allow, "allow-tools", "", "Comma-separated tools or groups to expose (alias --allow)")
	fs.StringVar(&o.Deny, "deny-tools", "", "Comma-separated tools or groups to hide (alias --deny)")
	disableLogging := fs.Bool("disable-logging", false, "Disable all logging (alias --no-logging)")
	configFile := fs.String("config", "teamwork-mcp.toml", "Path to config file")
	fs.StringVar(&o.Transport, "transport", "", "MCP transport: stdio or http")
	fs.StringVar(&o.Port, "port", "", "Port for the http transport")
	fs.Parse(os.Args[1:])

	if fs.Changed("disable-logging") {
		o.DisableLogging = disableLogging
	}

	cfg, err := config.LoadFromFiles(config.AppTeamwork, *configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.ApplyFlagOverrides(cfg, o)

	common.LoadVersionFromFile()
	logger := common.NewLoggerFromConfig(cfg.Logging)

	redacted := cfg.Redacted()
	logger.Info().
		Str("domain", redacted.Teamwork.Domain).
		Str("username", redacted.Teamwork.Username).
		Str("password", redacted.Teamwork.Password).
		Str("project_id", redacted.Teamwork.ProjectID).
		Str("solution_root", redacted.Teamwork.SolutionRoot).
		Msg("teamwork configuration loaded")

	if err := cfg.ValidateTeamwork(); err != nil {
		logger.Error().Str("error", err.Error()).Msg("invalid configuration")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if o.ProjectID != "" {
		path, err := teamwork.SaveProjectConfig(".", teamwork.ProjectConfig{
			TeamworkProjectID: o.ProjectID,
			SolutionRootPath:  cfg.Teamwork.SolutionRoot,
		})
		if err != nil {
			logger.Warn().Str("error", err.Error()).Msg("failed to save project config")
		} else {
			logger.Info().Str("path", path).Msg("project config saved")
		}
	} else if cfg.Teamwork.ProjectID == "" {
		if saved, err := teamwork.LoadProjectConfig("."); err == nil && saved.TeamworkProjectID != "" {
			cfg.Teamwork.ProjectID = saved.TeamworkProjectID
			if cfg.Teamwork.SolutionRoot == "" {
				cfg.Teamwork.SolutionRoot = saved.SolutionRootPath
			}
		}
	}

	clients, err := teamwork.NewClients(cfg.Teamwork.Domain, cfg.Teamwork.Username, cfg.Teamwork.Password, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	handlers := teamwork.NewHandlers(clients, teamwork.Options{
		ProjectID:    cfg.Teamwork.ProjectID,
		SolutionRoot: cfg.Teamwork.SolutionRoot,
	}, logger)

	dispatcher, err := teamwork.NewDispatcher(handlers, cfg.Tools.Allow, cfg.Tools.Deny, logger)
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
	logger.Info().
		Int("tools", count).
		Str("v3", clients.V3.BaseURL()).
		Str("version", common.GetFullVersion()).
		Msg("teamwork-mcp starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := common.Serve(ctx, mcpServer, common.ServeOptions{
		Transport: cfg.Server.Transport,
		Port:      cfg.Server.Port,
	}, logger); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
