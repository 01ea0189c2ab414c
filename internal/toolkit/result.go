package toolkit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// TextResult creates a successful single-text MCP result.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// ErrorResult creates an MCP error result.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// ErrorResultf is ErrorResult with formatting.
func ErrorResultf(format string, args ...any) *mcp.CallToolResult {
	return ErrorResult(fmt.Sprintf(format, args...))
}

// Lines joins the non-empty lines with newlines into a text result.
func Lines(lines ...string) *mcp.CallToolResult {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return TextResult(strings.Join(kept, "\n"))
}

// JSONResult renders v as indented JSON. Values that cannot be encoded fall
// back to their %+v representation.
func JSONResult(v any) *mcp.CallToolResult {
	return TextResult(ToJSON(v))
}

// ToJSON is the string form used by JSONResult.
func ToJSON(v any) string {
	if raw, ok := v.(json.RawMessage); ok {
		var decoded any
		if json.Unmarshal(raw, &decoded) == nil {
			v = decoded
		} else {
			return string(raw)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
