package teamwork

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

type createCompanyArgs struct {
	CompanyRequest *CompanyRequest `json:"companyRequest" jsonschema_description:"The company to create. name is required."`
}

type updateCompanyArgs struct {
	CompanyID      int             `json:"companyId" jsonschema_description:"Path parameter: companyId"`
	CompanyRequest *CompanyRequest `json:"companyRequest" jsonschema_description:"The company fields to change"`
}

type companyIDArgs struct {
	CompanyID int `json:"companyId" jsonschema_description:"Path parameter: companyId"`
}

type getCompaniesArgs struct {
	SearchTerm          string   `json:"searchTerm,omitempty" jsonschema_description:"Filter by company name and description"`
	Page                int      `json:"page,omitempty" jsonschema_description:"Page number for pagination"`
	PageSize            int      `json:"pageSize,omitempty" jsonschema_description:"Number of items per page"`
	OrderBy             string   `json:"orderBy,omitempty" jsonschema_description:"Field to order results by (e.g., name, dateadded, etc.)"`
	OrderMode           string   `json:"orderMode,omitempty" jsonschema:"enum=asc,enum=desc" jsonschema_description:"Sort order (asc or desc)"`
	TagIDs              []string `json:"tagIds,omitempty" jsonschema_description:"Filter by tag IDs"`
	IncludeCustomFields *bool    `json:"includeCustomFields,omitempty" jsonschema_description:"Include custom fields in the response"`
	FullProfile         *bool    `json:"fullProfile,omitempty" jsonschema_description:"Include full profile information"`
	GetStats            *bool    `json:"getStats,omitempty" jsonschema_description:"Include stats of company tasks and projects"`
}

type getCompanyByIDArgs struct {
	CompanyID           int   `json:"companyId" jsonschema_description:"The ID of the company to retrieve"`
	IncludeCustomFields *bool `json:"includeCustomFields,omitempty" jsonschema_description:"Include custom fields in the response"`
	FullProfile         *bool `json:"fullProfile,omitempty" jsonschema_description:"Include full profile information"`
	GetStats            *bool `json:"getStats,omitempty" jsonschema_description:"Include stats of company tasks and projects"`
}

func (h *Handlers) CreateCompany(ctx context.Context, _ mcp.CallToolRequest, args createCompanyArgs) (*mcp.CallToolResult, error) {
	const failure = "Error creating company"
	if args.CompanyRequest == nil || args.CompanyRequest.Name == "" {
		return toolkit.ErrorResultf("%s: Company name is required", failure), nil
	}
	data, err := h.v3.Post(ctx, "companies.json", map[string]any{"company": args.CompanyRequest})
	return h.respond(data, err, failure), nil
}

func (h *Handlers) UpdateCompany(ctx context.Context, _ mcp.CallToolRequest, args updateCompanyArgs) (*mcp.CallToolResult, error) {
	const failure = "Error updating company"
	if args.CompanyRequest == nil {
		return toolkit.ErrorResultf("%s: companyRequest is required", failure), nil
	}
	data, err := h.v3.Patch(ctx, fmt.Sprintf("companies/%d.json", args.CompanyID), map[string]any{"company": args.CompanyRequest})
	return h.respond(data, err, failure), nil
}

func (h *Handlers) DeleteCompany(ctx context.Context, _ mcp.CallToolRequest, args companyIDArgs) (*mcp.CallToolResult, error) {
	_, err := h.v3.Delete(ctx, fmt.Sprintf("companies/%d.json", args.CompanyID))
	if err != nil {
		return h.fail("Error deleting company", err), nil
	}
	return toolkit.JSONResult(map[string]bool{"success": true}), nil
}

func (h *Handlers) GetCompanies(ctx context.Context, _ mcp.CallToolRequest, args getCompaniesArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, "companies.json", args, args.PageSize, "Error retrieving companies"), nil
}

func (h *Handlers) GetCompanyByID(ctx context.Context, _ mcp.CallToolRequest, args getCompanyByIDArgs) (*mcp.CallToolResult, error) {
	return h.list(ctx, h.v3, fmt.Sprintf("companies/%d.json", args.CompanyID), args, 0, "Error retrieving company", "companyId"), nil
}
