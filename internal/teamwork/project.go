package teamwork

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

const (
	// ProjectConfigFile is written next to the process when a project id
	// is supplied on the command line.
	ProjectConfigFile = "teamwork.config.json"

	// MarkerFile lives in the solution root and carries PROJECTID= and
	// TASKLISTID= lines.
	MarkerFile = ".teamwork"
)

// ProjectConfig is the persisted project selection.
type ProjectConfig struct {
	TeamworkProjectID string `json:"teamworkProjectId"`
	SolutionRootPath  string `json:"solutionRootPath,omitempty"`
}

// SaveProjectConfig writes cfg to dir/teamwork.config.json.
func SaveProjectConfig(dir string, cfg ProjectConfig) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ProjectConfigFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save project config: %w", err)
	}
	return path, nil
}

// LoadProjectConfig reads dir/teamwork.config.json. A missing file yields
// the zero config.
func LoadProjectConfig(dir string) (ProjectConfig, error) {
	var cfg ProjectConfig
	data, err := os.ReadFile(filepath.Join(dir, ProjectConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", ProjectConfigFile, err)
	}
	return cfg, nil
}

var (
	markerProject  = regexp.MustCompile(`PROJECTID=(\d+)`)
	markerTaskList = regexp.MustCompile(`TASKLISTID=(\d+)`)
)

// Marker holds the ids found in a .teamwork file. Zero means absent.
type Marker struct {
	ProjectID  int
	TaskListID int
}

// ReadMarker parses root/.teamwork. A missing file yields the zero marker.
func ReadMarker(root string) (Marker, error) {
	var m Marker
	data, err := os.ReadFile(filepath.Join(root, MarkerFile))
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, err
	}
	if match := markerProject.FindSubmatch(data); match != nil {
		m.ProjectID, _ = strconv.Atoi(string(match[1]))
	}
	if match := markerTaskList.FindSubmatch(data); match != nil {
		m.TaskListID, _ = strconv.Atoi(string(match[1]))
	}
	return m, nil
}

// AppendTaskListID records id in root/.teamwork.
func AppendTaskListID(root string, id int) error {
	f, err := os.OpenFile(filepath.Join(root, MarkerFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "\nTASKLISTID=%d", id); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
