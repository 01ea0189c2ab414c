package teamwork

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

var reportFormats = []string{"csv", "html", "pdf", "xlsx"}

func (h *Handlers) GetUserTaskCompletion(ctx context.Context, _ mcp.CallToolRequest, args getUserTaskCompletionArgs) (*mcp.CallToolResult, error) {
	path := fmt.Sprintf("reporting/precanned/usertaskcompletion/%d.json", args.UserID)
	return h.list(ctx, h.v3, path, args, args.PageSize, "Error", "userId"), nil
}

// GetUtilizationReport downloads the utilization report. Text formats are
// returned as-is and binary ones base64 encoded.
func (h *Handlers) GetUtilizationReport(ctx context.Context, _ mcp.CallToolRequest, args getUtilizationReportArgs) (*mcp.CallToolResult, error) {
	format := strings.ToLower(args.Format)
	if !slices.Contains(reportFormats, format) {
		return toolkit.ErrorResultf("Error: format must be one of: %s", strings.Join(reportFormats, ", ")), nil
	}
	if err := checkPageSize(args.PageSize); err != nil {
		return toolkit.ErrorResult(err.Error()), nil
	}
	query, err := queryFrom(args, "format")
	if err != nil {
		return h.fail("Error", err), nil
	}

	resp, err := h.v3.Do(ctx, "GET", "reporting/precanned/utilization."+format, query, nil)
	if err != nil {
		return h.fail("Error", err), nil
	}
	switch {
	case len(resp.Body) == 0:
		return toolkit.TextResult("The report is empty."), nil
	case format == "csv" || format == "html":
		return toolkit.TextResult(string(resp.Body)), nil
	case resp.IsJSON():
		return toolkit.JSONResult(resp.Body), nil
	}
	return toolkit.JSONResult(map[string]any{
		"format":      format,
		"contentType": resp.ContentType,
		"encoding":    "base64",
		"content":     base64.StdEncoding.EncodeToString(resp.Body),
	}), nil
}
