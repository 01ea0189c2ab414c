package toolkit

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	noResponseText  = "Operation completed, but no response data was returned."
	emptyTextFiller = "No text content"
)

// Normalize coerces any handler outcome into a well-formed result whose
// content items are all text.
func Normalize(res *mcp.CallToolResult, err error) *mcp.CallToolResult {
	if err != nil {
		return ErrorResult(err.Error())
	}
	if res == nil {
		return TextResult(noResponseText)
	}

	out := &mcp.CallToolResult{
		Result:            res.Result,
		IsError:           res.IsError,
		StructuredContent: res.StructuredContent,
	}

	for _, c := range res.Content {
		switch v := c.(type) {
		case mcp.TextContent:
			out.Content = append(out.Content, normalizeText(v))
		case *mcp.TextContent:
			if v == nil {
				continue
			}
			out.Content = append(out.Content, normalizeText(*v))
		default:
			out.Content = append(out.Content, mcp.NewTextContent(stringify(c)))
		}
	}

	if len(out.Content) == 0 {
		if res.StructuredContent != nil {
			out.Content = []mcp.Content{mcp.NewTextContent(stringify(res.StructuredContent))}
		} else {
			out.Content = []mcp.Content{mcp.NewTextContent(noResponseText)}
		}
	}
	return out
}

func normalizeText(t mcp.TextContent) mcp.TextContent {
	if t.Type == "" {
		t.Type = "text"
	}
	if t.Text == "" {
		t.Text = emptyTextFiller
	}
	return t
}

func stringify(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
