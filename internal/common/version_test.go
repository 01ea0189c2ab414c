package common

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
)

func TestLoadVersionFrom_FillsDefaults(t *testing.T) {
	oldVersion, oldBuild, oldCommit := Version, Build, GitCommit
	t.Cleanup(func() { Version, Build, GitCommit = oldVersion, oldBuild, oldCommit })
	Version, Build, GitCommit = "dev", "unknown", "unknown"

	path := filepath.Join(t.TempDir(), ".version")
	content := "# build metadata\nversion: 1.4.0\nbuild: 2026-10-01\ncommit: abc123\nnonsense\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write version file: %v", err)
	}

	loadVersionFrom(path)

	if Version != "1.4.0" {
		t.Errorf("Version = %q, want 1.4.0", Version)
	}
	if Build != "2026-10-01" {
		t.Errorf("Build = %q, want 2026-10-01", Build)
	}
	if !strings.Contains(GetFullVersion(), "commit: abc123") {
		t.Errorf("GetFullVersion() = %q, want commit abc123", GetFullVersion())
	}
}

func TestLoadVersionFrom_LdflagsWin(t *testing.T) {
	oldVersion := Version
	t.Cleanup(func() { Version = oldVersion })
	Version = "2.0.0"

	path := filepath.Join(t.TempDir(), ".version")
	if err := os.WriteFile(path, []byte("version: 1.0.0\n"), 0644); err != nil {
		t.Fatalf("write version file: %v", err)
	}
	loadVersionFrom(path)

	if GetVersion() != "2.0.0" {
		t.Errorf("GetVersion() = %q, want ldflags value 2.0.0", GetVersion())
	}
}

func TestLoadVersionFrom_MissingFile(t *testing.T) {
	oldVersion := Version
	t.Cleanup(func() { Version = oldVersion })
	Version = "dev"

	loadVersionFrom(filepath.Join(t.TempDir(), "absent"))
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}
}

func TestApplyBuildInfo(t *testing.T) {
	oldVersion, oldBuild, oldCommit := Version, Build, GitCommit
	t.Cleanup(func() { Version, Build, GitCommit = oldVersion, oldBuild, oldCommit })
	Version, Build, GitCommit = "dev", "unknown", "unknown"

	applyBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-18T09:00:00Z"},
		},
	})

	if Version != "dev" {
		t.Errorf("Version = %q, a devel build should keep dev", Version)
	}
	if GitCommit != "0123456" {
		t.Errorf("GitCommit = %q, want short hash", GitCommit)
	}
	if Build != "2026-10-18T09:00:00Z" {
		t.Errorf("Build = %q", Build)
	}
}

func TestUserAgent(t *testing.T) {
	oldVersion := Version
	t.Cleanup(func() { Version = oldVersion })
	Version = "1.4.0"

	if got := UserAgent("teamwork-mcp"); got != "teamwork-mcp/1.4.0" {
		t.Errorf("UserAgent = %q", got)
	}
}
