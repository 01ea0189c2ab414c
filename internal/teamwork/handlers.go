package teamwork

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/common"
	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

// Options carries the project defaults used by some tools.
type Options struct {
	// ProjectID is the configured default project, if any.
	ProjectID string
	// SolutionRoot is the directory holding the .teamwork marker file.
	SolutionRoot string
}

// Handlers implements the Teamwork tools against the v1 and v3 APIs.
type Handlers struct {
	v1           *Client
	v3           *Client
	projectID    string
	solutionRoot string
	logger       *common.Logger
}

// NewHandlers creates the Teamwork tool handlers.
func NewHandlers(clients *Clients, opts Options, logger *common.Logger) *Handlers {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	root := opts.SolutionRoot
	if root == "" {
		root = "."
	}
	return &Handlers{
		v1:           clients.V1,
		v3:           clients.V3,
		projectID:    opts.ProjectID,
		solutionRoot: root,
		logger:       logger,
	}
}

// respond renders a vendor response, or an error prefixed with what failed.
func (h *Handlers) respond(data json.RawMessage, err error, failure string) *mcp.CallToolResult {
	if err != nil {
		return h.fail(failure, err)
	}
	if len(data) == 0 {
		return toolkit.JSONResult(map[string]bool{"success": true})
	}
	return toolkit.JSONResult(data)
}

func (h *Handlers) fail(failure string, err error) *mcp.CallToolResult {
	h.logger.Warn().Str("error", err.Error()).Msg(failure)
	return toolkit.ErrorResultf("%s: %s", failure, err.Error())
}

// list runs a GET with filters translated from args.
func (h *Handlers) list(ctx context.Context, c *Client, path string, args any, pageSize int, failure string, pathKeys ...string) *mcp.CallToolResult {
	if err := checkPageSize(pageSize); err != nil {
		return toolkit.ErrorResult(err.Error())
	}
	query, err := queryFrom(args, pathKeys...)
	if err != nil {
		return h.fail(failure, err)
	}
	data, err := c.Get(ctx, path, query)
	return h.respond(data, err, failure)
}

// defaultProjectID resolves the configured project, then the marker file.
func (h *Handlers) defaultProjectID() int {
	if id, err := strconv.Atoi(h.projectID); err == nil && id > 0 {
		return id
	}
	if m, err := ReadMarker(h.solutionRoot); err == nil {
		return m.ProjectID
	}
	return 0
}

func boolValue(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
