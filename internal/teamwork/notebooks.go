package teamwork

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

const notebookDescription = "Notebook is a space where teams can create, share, and organize written content in a " +
	"structured way. It's commonly used for documenting processes, storing meeting notes, capturing research, or " +
	"drafting ideas that need to be revisited and refined over time. Unlike quick messages or task comments, " +
	"notebooks provide a more permanent and organized format that can be easily searched and referenced, helping " +
	"teams maintain a centralized source of knowledge and ensuring important information remains accessible to " +
	"everyone who needs it."

type createNotebookArgs struct {
	Name        string `json:"name" jsonschema_description:"The name of the notebook."`
	ProjectID   int    `json:"projectId" jsonschema_description:"The ID of the project to create the notebook in."`
	Description string `json:"description,omitempty" jsonschema_description:"A description of the notebook."`
	Contents    string `json:"contents" jsonschema_description:"The contents of the notebook."`
	Type        string `json:"type" jsonschema_description:"The type of the notebook. Valid values are 'MARKDOWN' and 'HTML'."`
	TagIDs      []int  `json:"tagIds,omitempty" jsonschema_description:"A list of tag IDs to associate with the notebook."`
}

type updateNotebookArgs struct {
	ID          int     `json:"id" jsonschema_description:"The ID of the notebook to update."`
	Name        *string `json:"name,omitempty" jsonschema_description:"The name of the notebook."`
	Description *string `json:"description,omitempty" jsonschema_description:"A description of the notebook."`
	Contents    *string `json:"contents,omitempty" jsonschema_description:"The contents of the notebook."`
	Type        *string `json:"type,omitempty" jsonschema_description:"The type of the notebook. Valid values are 'MARKDOWN' and 'HTML'."`
	TagIDs      []int   `json:"tagIds,omitempty" jsonschema_description:"A list of tag IDs to associate with the notebook."`
}

type notebookIDArgs struct {
	ID int `json:"id" jsonschema_description:"The ID of the notebook."`
}

type listNotebooksArgs struct {
	ProjectIDs      []int  `json:"projectIds,omitempty" jsonschema_description:"A list of project IDs to filter notebooks by projects"`
	SearchTerm      string `json:"searchTerm,omitempty" jsonschema_description:"A search term to filter notebooks by name or description."`
	TagIDs          []int  `json:"tagIds,omitempty" jsonschema_description:"A list of tag IDs to filter notebooks by tags"`
	MatchAllTags    *bool  `json:"matchAllTags,omitempty" jsonschema_description:"If true, the search will match notebooks that have all the specified tags. If false, the search will match notebooks that have any of the specified tags. Defaults to false."`
	IncludeContents *bool  `json:"includeContents,omitempty" jsonschema_description:"If true, the contents of the notebook will be included in the response. Defaults to true."`
	Page            int    `json:"page,omitempty" jsonschema_description:"Page number for pagination of results."`
	PageSize        int    `json:"pageSize,omitempty" jsonschema_description:"Number of results per page for pagination."`
}

func validNotebookType(t string) bool {
	return t == "MARKDOWN" || t == "HTML"
}

func (h *Handlers) CreateNotebook(ctx context.Context, _ mcp.CallToolRequest, args createNotebookArgs) (*mcp.CallToolResult, error) {
	switch {
	case args.Name == "":
		return toolkit.ErrorResult("Error: name is required"), nil
	case args.ProjectID == 0:
		return toolkit.ErrorResult("Error: projectId is required"), nil
	case args.Contents == "":
		return toolkit.ErrorResult("Error: contents is required"), nil
	case args.Type == "":
		return toolkit.ErrorResult("Error: type is required (must be MARKDOWN or HTML)"), nil
	case !validNotebookType(args.Type):
		return toolkit.ErrorResult("Error: type must be either MARKDOWN or HTML"), nil
	}

	notebook := map[string]any{
		"name":     args.Name,
		"contents": args.Contents,
		"type":     args.Type,
	}
	if args.Description != "" {
		notebook["description"] = args.Description
	}
	if len(args.TagIDs) > 0 {
		notebook["tagIds"] = joinIDs(args.TagIDs)
	}
	data, err := h.v3.Post(ctx, fmt.Sprintf("projects/%d/notebooks.json", args.ProjectID), map[string]any{"notebook": notebook})
	return h.respond(data, err, "Error creating notebook"), nil
}

func (h *Handlers) UpdateNotebook(ctx context.Context, _ mcp.CallToolRequest, args updateNotebookArgs) (*mcp.CallToolResult, error) {
	if args.ID == 0 {
		return toolkit.ErrorResult("Error: id is required"), nil
	}
	if args.Type != nil && !validNotebookType(*args.Type) {
		return toolkit.ErrorResult("Error: type must be either MARKDOWN or HTML"), nil
	}

	notebook := map[string]any{}
	if args.Name != nil {
		notebook["name"] = *args.Name
	}
	if args.Description != nil {
		notebook["description"] = *args.Description
	}
	if args.Contents != nil {
		notebook["contents"] = *args.Contents
	}
	if args.Type != nil {
		notebook["type"] = *args.Type
	}
	if args.TagIDs != nil {
		notebook["tagIds"] = joinIDs(args.TagIDs)
	}
	data, err := h.v3.Put(ctx, fmt.Sprintf("notebooks/%d.json", args.ID), map[string]any{"notebook": notebook})
	return h.respond(data, err, "Error updating notebook"), nil
}

func (h *Handlers) DeleteNotebook(ctx context.Context, _ mcp.CallToolRequest, args notebookIDArgs) (*mcp.CallToolResult, error) {
	if args.ID == 0 {
		return toolkit.ErrorResult("Error: id is required"), nil
	}
	if _, err := h.v3.Delete(ctx, fmt.Sprintf("notebooks/%d.json", args.ID)); err != nil {
		return h.fail("Error deleting notebook", err), nil
	}
	return toolkit.TextResult(fmt.Sprintf("Notebook %d deleted successfully", args.ID)), nil
}

func (h *Handlers) GetNotebook(ctx context.Context, _ mcp.CallToolRequest, args notebookIDArgs) (*mcp.CallToolResult, error) {
	if args.ID == 0 {
		return toolkit.ErrorResult("Error: id is required"), nil
	}
	data, err := h.v3.Get(ctx, fmt.Sprintf("notebooks/%d.json", args.ID), nil)
	return h.respond(data, err, "Error getting notebook"), nil
}

// ListNotebooks includes notebook contents unless asked not to.
func (h *Handlers) ListNotebooks(ctx context.Context, _ mcp.CallToolRequest, args listNotebooksArgs) (*mcp.CallToolResult, error) {
	const failure = "Error listing notebooks"
	if err := checkPageSize(args.PageSize); err != nil {
		return toolkit.ErrorResult(err.Error()), nil
	}
	query, err := queryFrom(args)
	if err != nil {
		return h.fail(failure, err), nil
	}
	query.Set("includeContents", strconv.FormatBool(boolValue(args.IncludeContents, true)))
	data, err := h.v3.Get(ctx, "notebooks.json", query)
	return h.respond(data, err, failure), nil
}
