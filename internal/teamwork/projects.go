package teamwork

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

type getCurrentProjectArgs struct {
	ProjectID int `json:"projectId,omitempty" jsonschema_description:"The current Teamwork project ID associated with the solution. Defaults to the configured project or the PROJECTID in the .teamwork file."`
}

type createProjectArgs struct {
	Name        string `json:"name" jsonschema_description:"The name of the project (required)"`
	Description string `json:"description,omitempty" jsonschema_description:"The description of the project"`
	CompanyID   int    `json:"companyId,omitempty" jsonschema_description:"The ID of the company the project belongs to"`
	CategoryID  int    `json:"categoryId,omitempty" jsonschema_description:"The ID of the category the project belongs to"`
	StartDate   string `json:"startDate,omitempty" jsonschema_description:"The start date of the project (format: YYYYMMDD)"`
	EndDate     string `json:"endDate,omitempty" jsonschema_description:"The end date of the project (format: YYYYMMDD)"`
	Status      string `json:"status,omitempty" jsonschema_description:"The status of the project"`
}

// GetProjects lists projects, retrying on the v1 API when v3 fails.
func (h *Handlers) GetProjects(ctx context.Context, _ mcp.CallToolRequest, args getProjectsArgs) (*mcp.CallToolResult, error) {
	const failure = "Error retrieving projects"
	if err := checkPageSize(args.PageSize); err != nil {
		return toolkit.ErrorResult(err.Error()), nil
	}
	query, err := queryFrom(args)
	if err != nil {
		return h.fail(failure, err), nil
	}

	data, err := h.v3.Get(ctx, "projects.json", query)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("v3 projects request failed, trying v1")
		var v1Err error
		data, v1Err = h.v1.Get(ctx, "projects.json", query)
		if v1Err != nil {
			h.logger.Error().Str("error", v1Err.Error()).Msg("v1 projects request also failed")
			return h.fail(failure, err), nil
		}
	}

	if len(data) == 0 || string(data) == "null" {
		return toolkit.TextResult("No projects found or API returned empty response."), nil
	}
	var envelope struct {
		Projects *[]json.RawMessage `json:"projects"`
	}
	var list []json.RawMessage
	switch {
	case json.Unmarshal(data, &list) == nil && len(list) == 0:
		return toolkit.TextResult("No projects found. The API returned an empty array."), nil
	case json.Unmarshal(data, &envelope) == nil && envelope.Projects != nil && len(*envelope.Projects) == 0:
		return toolkit.TextResult("No projects found. The API returned an empty projects array."), nil
	}
	return toolkit.JSONResult(data), nil
}

// GetCurrentProject fetches the solution's project.
func (h *Handlers) GetCurrentProject(ctx context.Context, _ mcp.CallToolRequest, args getCurrentProjectArgs) (*mcp.CallToolResult, error) {
	const failure = "Error retrieving current project"
	id := args.ProjectID
	if id == 0 {
		id = h.defaultProjectID()
	}
	if id == 0 {
		return toolkit.ErrorResultf("%s: Project ID is required", failure), nil
	}
	data, err := h.v3.Get(ctx, fmt.Sprintf("projects/%d.json", id), nil)
	return h.respond(data, err, failure), nil
}

// CreateProject creates a project through the v1 API.
func (h *Handlers) CreateProject(ctx context.Context, _ mcp.CallToolRequest, args createProjectArgs) (*mcp.CallToolResult, error) {
	const failure = "Error creating project"
	if args.Name == "" {
		return toolkit.ErrorResultf("%s: Project name is required", failure), nil
	}
	h.logger.Info().Str("name", args.Name).Msg("creating project")
	data, err := h.v1.Post(ctx, "projects.json", map[string]any{"project": args})
	return h.respond(data, err, failure), nil
}
