package teamwork

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

type personIDArgs struct {
	PersonID int `json:"personId" jsonschema_description:"The ID of the person"`
}

type getProjectPeopleArgs struct {
	ProjectID        int    `json:"projectId" jsonschema_description:"The ID of the project to get people from"`
	UserType         string `json:"userType,omitempty" jsonschema:"enum=account,enum=collaborator,enum=contact" jsonschema_description:"Filter by user type"`
	SearchTerm       string `json:"searchTerm,omitempty" jsonschema_description:"Filter by name or email"`
	OrderMode        string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"Order mode"`
	OrderBy          string `json:"orderBy,omitempty" jsonschema:"enum=name,enum=namecaseinsensitive,enum=company" jsonschema_description:"Order by field"`
	PageSize         int    `json:"pageSize,omitempty" jsonschema_description:"Number of items per page"`
	Page             int    `json:"page,omitempty" jsonschema_description:"Page number"`
	IncludeObservers *bool  `json:"includeObservers,omitempty" jsonschema_description:"Include project observers"`
}

type addPeopleToProjectArgs struct {
	ProjectID    int   `json:"projectId" jsonschema_description:"The ID of the project to add people to"`
	UserIDs      []int `json:"userIds" jsonschema_description:"Array of user IDs to add to the project"`
	CheckTeamIDs []int `json:"checkTeamIds,omitempty" jsonschema_description:"Optional array of team IDs to check"`
}

// updatePersonArgs carries the v1 hyphenated person fields.
type updatePersonArgs struct {
	PersonID          int     `json:"personId" jsonschema_description:"The ID of the person to update"`
	FirstName         *string `json:"first-name,omitempty" jsonschema_description:"First name of the person"`
	LastName          *string `json:"last-name,omitempty" jsonschema_description:"Last name of the person"`
	EmailAddress      *string `json:"email-address,omitempty" jsonschema_description:"Email address of the person"`
	Title             *string `json:"title,omitempty" jsonschema_description:"Job title or position of the person"`
	PhoneNumberOffice *string `json:"phone-number-office,omitempty" jsonschema_description:"Office phone number"`
	TimezoneID        *int    `json:"timezoneId,omitempty" jsonschema_description:"Timezone ID for the person"`
	Administrator     *bool   `json:"administrator,omitempty" jsonschema_description:"Make this person an administrator"`
	UserType          *string `json:"user-type,omitempty" jsonschema_description:"User type (account, collaborator, contact)"`
	CompanyID         *int    `json:"company-id,omitempty" jsonschema_description:"ID of the company the person belongs to"`
}

func (u updatePersonArgs) empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.EmailAddress == nil &&
		u.Title == nil && u.PhoneNumberOffice == nil && u.TimezoneID == nil &&
		u.Administrator == nil && u.UserType == nil && u.CompanyID == nil
}

type getPeopleMetricsPerformanceArgs struct {
	StartDate string `json:"startDate,omitempty" jsonschema_description:"Start date of the period (YYYY-MM-DD)"`
	EndDate   string `json:"endDate,omitempty" jsonschema_description:"End date of the period (YYYY-MM-DD)"`
	OrderMode string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"Order mode"`
}

func (h *Handlers) GetPeople(ctx context.Context, _ mcp.CallToolRequest, args getPeopleArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, "people.json", args, args.PageSize, "Error"), nil
}

func (h *Handlers) GetPersonByID(ctx context.Context, _ mcp.CallToolRequest, args personIDArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, fmt.Sprintf("people/%d.json", args.PersonID), nil)
	if err == nil && len(data) == 0 {
		return toolkit.TextResult(fmt.Sprintf("No person found with ID %d or API returned empty response.", args.PersonID)), nil
	}
	return h.respond(data, err, "Error"), nil
}

func (h *Handlers) GetProjectPeople(ctx context.Context, _ mcp.CallToolRequest, args getProjectPeopleArgs) (*mcp.CallToolResult, error) {
	if err := checkPageSize(args.PageSize); err != nil {
		return toolkit.ErrorResult(err.Error()), nil
	}
	query, err := queryFrom(args, "projectId")
	if err != nil {
		return h.fail("Error", err), nil
	}
	data, err := h.v3.Get(ctx, fmt.Sprintf("projects/%d/people.json", args.ProjectID), query)
	if err == nil && len(data) == 0 {
		return toolkit.TextResult(fmt.Sprintf("No people found for project ID %d or API returned empty response.", args.ProjectID)), nil
	}
	return h.respond(data, err, "Error"), nil
}

func (h *Handlers) AddPeopleToProject(ctx context.Context, _ mcp.CallToolRequest, args addPeopleToProjectArgs) (*mcp.CallToolResult, error) {
	if args.ProjectID == 0 {
		return toolkit.ErrorResult("Error: Missing required parameter 'projectId'"), nil
	}
	if len(args.UserIDs) == 0 {
		return toolkit.ErrorResult("Error: Missing or invalid required parameter 'userIds'. Must be a non-empty array of user IDs."), nil
	}
	payload := map[string]any{"userIds": args.UserIDs}
	if len(args.CheckTeamIDs) > 0 {
		payload["checkTeamIds"] = args.CheckTeamIDs
	}
	data, err := h.v3.Put(ctx, fmt.Sprintf("projects/%d/people.json", args.ProjectID), payload)
	return h.respond(data, err, "Error"), nil
}

func (h *Handlers) DeletePerson(ctx context.Context, _ mcp.CallToolRequest, args personIDArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Delete(ctx, fmt.Sprintf("people/%d.json", args.PersonID))
	return h.respond(data, err, "Error"), nil
}

// UpdatePerson changes a person through the v1 API.
func (h *Handlers) UpdatePerson(ctx context.Context, _ mcp.CallToolRequest, args updatePersonArgs) (*mcp.CallToolResult, error) {
	const failure = "Error updating person"
	if args.empty() {
		return toolkit.ErrorResultf("%s: At least one field to update must be provided", failure), nil
	}
	person, err := personFields(args)
	if err != nil {
		return h.fail(failure, err), nil
	}
	data, err := h.v1.Put(ctx, fmt.Sprintf("people/%d.json", args.PersonID), map[string]any{"person": person})
	return h.respond(data, err, failure), nil
}

// personFields is the request body without the path parameter.
func personFields(u updatePersonArgs) (map[string]any, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "personId")
	return fields, nil
}

func (h *Handlers) GetMe(ctx context.Context, _ mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, error) {
	data, err := h.v3.Get(ctx, "me.json", nil)
	if err == nil && len(data) == 0 {
		return toolkit.ErrorResult("Error getting logged-in user information"), nil
	}
	return h.respond(data, err, "Error retrieving logged-in user"), nil
}

func (h *Handlers) GetProjectPerson(ctx context.Context, _ mcp.CallToolRequest, args getProjectPersonArgs) (*mcp.CallToolResult, error) {
	path := fmt.Sprintf("projects/%d/people/%d.json", args.ProjectID, args.PersonID)
	return h.list(ctx, h.v3, path, args, args.PageSize, "Error retrieving project person", "projectId", "personId"), nil
}

func (h *Handlers) GetPeopleMetricsPerformance(ctx context.Context, _ mcp.CallToolRequest, args getPeopleMetricsPerformanceArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, "people/metrics/performance.json", args, 0, "Error"), nil
}

func (h *Handlers) GetPeopleUtilization(ctx context.Context, _ mcp.CallToolRequest, args getPeopleUtilizationArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, "people/utilization.json", args, args.PageSize, "Error"), nil
}
