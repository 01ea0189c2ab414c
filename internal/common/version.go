package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// Build metadata. Set with -ldflags "-X <module>/internal/common.Version=1.2.3".
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, Build, GitCommit)
}

// UserAgent is the header value vendor clients send for app.
func UserAgent(app string) string {
	return app + "/" + Version
}

// LoadVersionFromFile fills the build metadata still at its defaults, first
// from a .version file beside the binary, then from the module build info.
func LoadVersionFromFile() {
	if exe, err := os.Executable(); err == nil {
		loadVersionFrom(filepath.Join(filepath.Dir(exe), ".version"))
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info)
	}
}

func loadVersionFrom(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	applyVersionFields(parseVersionFile(f))
}

// parseVersionFile reads "key: value" lines, skipping blanks and # comments.
func parseVersionFile(r io.Reader) map[string]string {
	fields := map[string]string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if key, val, ok := strings.Cut(line, ":"); ok {
			fields[strings.TrimSpace(key)] = strings.TrimSpace(val)
		}
	}
	return fields
}

func applyVersionFields(fields map[string]string) {
	fill(&Version, "dev", fields["version"])
	fill(&Build, "unknown", fields["build"])
	fill(&GitCommit, "unknown", fields["commit"])
}

func applyBuildInfo(info *debug.BuildInfo) {
	if v := info.Main.Version; v != "(devel)" {
		fill(&Version, "dev", v)
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 7 {
				s.Value = s.Value[:7]
			}
			fill(&GitCommit, "unknown", s.Value)
		case "vcs.time":
			fill(&Build, "unknown", s.Value)
		}
	}
}

// fill sets *dst to val while *dst still holds def.
func fill(dst *string, def, val string) {
	if *dst == def && val != "" {
		*dst = val
	}
}
