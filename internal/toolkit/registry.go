package toolkit

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool pairs an MCP tool definition with its handler.
type Tool struct {
	Definition mcp.Tool
	Handler    server.ToolHandlerFunc
}

// Name returns the registered tool name.
func (t Tool) Name() string { return t.Definition.Name }

// Registry holds the fixed tool catalog of one server in registration order.
// It is populated once at startup and read-only afterwards.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers a tool. Empty or duplicate names are programming errors and
// panic.
func (r *Registry) Add(t Tool) {
	name := t.Name()
	if name == "" {
		panic("toolkit: tool registered with empty name")
	}
	if t.Handler == nil {
		panic(fmt.Sprintf("toolkit: tool %q registered without handler", name))
	}
	if _, dup := r.index[name]; dup {
		panic(fmt.Sprintf("toolkit: duplicate tool %q", name))
	}
	r.index[name] = len(r.tools)
	r.tools = append(r.tools, t)
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name()
	}
	return names
}

// HandlerFor looks up a tool by name.
func (r *Registry) HandlerFor(name string) (Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }
