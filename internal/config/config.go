// Package config loads outlook-mcp and teamwork-mcp configuration.
// Priority: defaults -> TOML files -> environment -> command-line flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

// App selects which binary's environment variables apply.
type App string

const (
	AppOutlook  App = "outlook"
	AppTeamwork App = "teamwork"
)

// Config represents the configuration of one MCP server binary.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Logging  common.LoggingConfig `toml:"logging"`
	Tools    ToolsConfig          `toml:"tools"`
	Outlook  OutlookConfig        `toml:"outlook"`
	Teamwork TeamworkConfig       `toml:"teamwork"`
}

// ServerConfig contains MCP transport settings.
type ServerConfig struct {
	Name      string `toml:"name"`
	Transport string `toml:"transport"`
	Port      string `toml:"port"`
}

// ToolsConfig holds the allow and deny lists. Entries are tool or group names.
type ToolsConfig struct {
	Allow []string `toml:"allow"`
	Deny  []string `toml:"deny"`
}

// OutlookConfig contains Microsoft Graph settings.
type OutlookConfig struct {
	ClientID       string `toml:"client_id"`
	TenantID       string `toml:"tenant_id"`
	AuthRecordPath string `toml:"auth_record_path"`
	GraphURL       string `toml:"graph_url"`
	AuthorityURL   string `toml:"authority_url"`
}

// TeamworkConfig contains Teamwork.com settings.
type TeamworkConfig struct {
	Domain       string `toml:"domain"`
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	ProjectID    string `toml:"project_id"`
	SolutionRoot string `toml:"solution_root"`
}

// NewDefaultConfig returns the defaults for app.
func NewDefaultConfig(app App) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Transport: common.TransportStdio,
			Port:      "4243",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Outlook: OutlookConfig{
			TenantID:     "common",
			GraphURL:     "https://graph.microsoft.com/beta",
			AuthorityURL: "https://login.microsoftonline.com",
		},
	}
	switch app {
	case AppOutlook:
		cfg.Server.Name = "simply-outlook-mcp"
		cfg.Logging.FilePath = "logs/outlook-mcp.log"
	case AppTeamwork:
		cfg.Server.Name = "teamwork-mcp"
		cfg.Logging.FilePath = "logs/teamwork-mcp.log"
	}
	return cfg
}

// LoadFromFiles loads configuration for app. Later files override earlier
// ones; a missing file is skipped.
func LoadFromFiles(app App, paths ...string) (*Config, error) {
	cfg := NewDefaultConfig(app)

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	switch app {
	case AppOutlook:
		applyOutlookEnv(cfg)
	case AppTeamwork:
		applyTeamworkEnv(cfg)
	}

	return cfg, nil
}

func applyOutlookEnv(cfg *Config) {
	if v := os.Getenv("SIMPLY_OUTLOOK_MCP_CLIENT_ID"); v != "" {
		cfg.Outlook.ClientID = v
	}
	if v := os.Getenv("SIMPLY_OUTLOOK_MCP_TENANT_ID"); v != "" {
		cfg.Outlook.TenantID = v
	}
	if v := os.Getenv("SIMPLY_OUTLOOK_MCP_DISABLED_TOOLS"); v != "" {
		cfg.Tools.Deny = SplitList(strings.ToLower(v))
	}
	if v := os.Getenv("SIMPLY_OUTLOOK_MCP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func applyTeamworkEnv(cfg *Config) {
	if v := os.Getenv("TEAMWORK_DOMAIN"); v != "" {
		cfg.Teamwork.Domain = v
	}
	if v := os.Getenv("TEAMWORK_USERNAME"); v != "" {
		cfg.Teamwork.Username = v
	}
	if v := os.Getenv("TEAMWORK_PASSWORD"); v != "" {
		cfg.Teamwork.Password = v
	}
	if v := os.Getenv("TEAMWORK_PROJECT_ID"); v != "" {
		cfg.Teamwork.ProjectID = v
	}
	if v := os.Getenv("SOLUTION_ROOT_PATH"); v != "" {
		cfg.Teamwork.SolutionRoot = v
	}
	if v := os.Getenv("ALLOW_TOOLS"); v != "" {
		cfg.Tools.Allow = SplitList(v)
	}
	if v := os.Getenv("DENY_TOOLS"); v != "" {
		cfg.Tools.Deny = SplitList(v)
	}
	if v := os.Getenv("DISABLE_LOGGING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.Disabled = b
		}
	}
	if v := os.Getenv("TEAMWORK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Overrides carries command-line values. Empty strings and nil pointers
// leave the loaded configuration untouched.
type Overrides struct {
	Transport      string
	Port           string
	ClientID       string
	TenantID       string
	Domain         string
	Username       string
	Password       string
	ProjectID      string
	SolutionRoot   string
	Allow          string
	Deny           string
	DisableLogging *bool
}

// ApplyFlagOverrides applies command-line flag overrides to cfg.
func ApplyFlagOverrides(cfg *Config, o Overrides) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Server.Transport, o.Transport)
	set(&cfg.Server.Port, o.Port)
	set(&cfg.Outlook.ClientID, o.ClientID)
	set(&cfg.Outlook.TenantID, o.TenantID)
	set(&cfg.Teamwork.Domain, o.Domain)
	set(&cfg.Teamwork.Username, o.Username)
	set(&cfg.Teamwork.Password, o.Password)
	set(&cfg.Teamwork.ProjectID, o.ProjectID)
	set(&cfg.Teamwork.SolutionRoot, o.SolutionRoot)
	if o.Allow != "" {
		cfg.Tools.Allow = SplitList(o.Allow)
	}
	if o.Deny != "" {
		cfg.Tools.Deny = SplitList(o.Deny)
	}
	if o.DisableLogging != nil && *o.DisableLogging {
		cfg.Logging.Disabled = true
	}
}

// ValidateTeamwork reports the missing Teamwork credentials, if any.
func (c *Config) ValidateTeamwork() error {
	var missing []string
	if c.Teamwork.Domain == "" {
		missing = append(missing, "domain (TEAMWORK_DOMAIN or --teamwork-domain)")
	}
	if c.Teamwork.Username == "" {
		missing = append(missing, "username (TEAMWORK_USERNAME or --teamwork-username)")
	}
	if c.Teamwork.Password == "" {
		missing = append(missing, "password (TEAMWORK_PASSWORD or --teamwork-password)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Teamwork configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Redacted returns a copy of c that is safe to log.
func (c Config) Redacted() Config {
	if c.Teamwork.Password != "" {
		c.Teamwork.Password = "********"
	}
	return c
}

// SplitList splits a comma-separated list, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
