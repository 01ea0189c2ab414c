package teamwork

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type getAllocationTimeArgs struct {
	AllocationID       int    `json:"allocationId" jsonschema_description:"Path parameter: allocationId"`
	UpdatedAfter       string `json:"updatedAfter,omitempty" jsonschema_description:"filter by updated after date"`
	StartDate          string `json:"startDate,omitempty" jsonschema_description:"filter by a starting date"`
	EndDate            string `json:"endDate,omitempty" jsonschema_description:"filter by an ending date"`
	OrderBy            string `json:"orderBy,omitempty" jsonschema:"enum=company,enum=date,enum=dateupdated,enum=project,enum=task,enum=tasklist,enum=user,enum=description,enum=billed,enum=billable,enum=timespent" jsonschema_description:"sort order"`
	OrderMode          string `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"order mode"`
	Page               int    `json:"page,omitempty" jsonschema_description:"page number"`
	PageSize           int    `json:"pageSize,omitempty" jsonschema_description:"number of items in a page"`
	IncludeTotals      *bool  `json:"includeTotals,omitempty" jsonschema_description:"include totals"`
	IncludePermissions *bool  `json:"includePermissions,omitempty" jsonschema_description:"include permissions"`
}

func (h *Handlers) GetTime(ctx context.Context, _ mcp.CallToolRequest, args getTimeArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, "time.json", args, args.PageSize, "Error"), nil
}

func (h *Handlers) GetAllocationTime(ctx context.Context, _ mcp.CallToolRequest, args getAllocationTimeArgs) (*mcp.CallToolResult, error) {
	path := fmt.Sprintf("allocations/%d/time.json", args.AllocationID)
	return h.list(ctx, h.v3, path, args, args.PageSize, "Error", "allocationId"), nil
}

// GetTimezones lists the timezones accepted by updatePerson.
func (h *Handlers) GetTimezones(ctx context.Context, _ mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, error) {
	data, err := h.v1.Get(ctx, "timezones.json", nil)
	return h.respond(data, err, "Error retrieving timezones"), nil
}
