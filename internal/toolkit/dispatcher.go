package toolkit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

// maxSuggestions caps the "Did you mean" list for unknown tools.
const maxSuggestions = 3

// Dispatcher routes tool calls through filtering, lookup, argument
// validation and result normalization.
type Dispatcher struct {
	registry *Registry
	filter   *Filter
	logger   *common.Logger
}

// NewDispatcher creates a dispatcher over a populated registry.
func NewDispatcher(registry *Registry, filter *Filter, logger *common.Logger) *Dispatcher {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Dispatcher{registry: registry, filter: filter, logger: logger}
}

// ListTools returns the definitions of every available tool.
func (d *Dispatcher) ListTools() []mcp.Tool {
	var out []mcp.Tool
	for _, t := range d.registry.List() {
		if d.filter.Allowed(t.Name()) {
			out = append(out, t.Definition)
		}
	}
	return out
}

// CallTool executes one tool call. It never returns a nil result.
func (d *Dispatcher) CallTool(ctx context.Context, request mcp.CallToolRequest) *mcp.CallToolResult {
	name := request.Params.Name
	logger := d.logger.WithCorrelationId(uuid.NewString())

	tool, ok := d.registry.HandlerFor(name)
	if !ok {
		logger.Warn().Str("tool", name).Msg("unknown tool")
		return ErrorResult(d.unknownToolMessage(name))
	}

	if !d.filter.Allowed(name) {
		logger.Warn().Str("tool", name).Msg("tool call rejected by filter")
		return ErrorResultf("Tool '%s' is not available. Check your allow/deny list configuration.", name)
	}

	if err := ValidateArguments(tool.Definition, request.GetArguments()); err != nil {
		logger.Debug().Str("tool", name).Str("error", err.Error()).Msg("tool arguments rejected")
		return ErrorResult(err.Error())
	}

	start := time.Now()
	res, err := invoke(ctx, tool, request)
	out := Normalize(res, err)

	logger.Debug().
		Str("tool", name).
		Bool("is_error", out.IsError).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("tool call completed")
	return out
}

func invoke(ctx context.Context, tool Tool, request mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("tool %s failed unexpectedly: %v", tool.Name(), r)
		}
	}()
	return tool.Handler(ctx, request)
}

func (d *Dispatcher) unknownToolMessage(name string) string {
	msg := "Unknown tool: " + name
	var candidates []string
	for _, n := range d.registry.Names() {
		if d.filter.Allowed(n) {
			candidates = append(candidates, n)
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		// fall back to the reverse direction so "deleteTasks" still finds "deleteTask"
		for _, c := range candidates {
			if fuzzy.MatchNormalizedFold(c, name) {
				ranks = append(ranks, fuzzy.Rank{Target: c, Distance: len(name) - len(c)})
			}
		}
	}
	if len(ranks) == 0 {
		return msg
	}
	sort.Sort(ranks)
	var suggestions []string
	for i, r := range ranks {
		if i == maxSuggestions {
			break
		}
		suggestions = append(suggestions, r.Target)
	}
	return fmt.Sprintf("%s. Did you mean: %s?", msg, strings.Join(suggestions, ", "))
}

// Mount registers every available tool on s, routing calls through
// CallTool. It returns the number of tools mounted.
func (d *Dispatcher) Mount(s *server.MCPServer) int {
	tools := d.ListTools()
	for _, def := range tools {
		s.AddTool(def, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return d.CallTool(ctx, request), nil
		})
	}
	return len(tools)
}
