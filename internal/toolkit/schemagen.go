package toolkit

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
)

var reflector = &jsonschema.Reflector{
	DoNotReference:            true,
	ExpandedStruct:            true,
	AllowAdditionalProperties: true,
	Anonymous:                 true,
}

// inlineReflector handles unnamed types, which ExpandedStruct cannot look
// up in the definitions.
var inlineReflector = &jsonschema.Reflector{
	DoNotReference:            true,
	AllowAdditionalProperties: true,
	Anonymous:                 true,
}

const emptyObjectSchema = `{"type":"object"}`

// SchemaFor reflects the JSON schema of an argument struct. Fields without
// omitempty in their json tag are required. Descriptions come from the
// jsonschema_description tag.
func SchemaFor(v any) (schema json.RawMessage) {
	t := reflect.TypeOf(v)
	if t == nil {
		return json.RawMessage(emptyObjectSchema)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r := reflector
	if t.Name() == "" {
		r = inlineReflector
	}
	defer func() {
		if recover() != nil {
			schema = json.RawMessage(emptyObjectSchema)
		}
	}()

	s := r.ReflectFromType(t)
	s.Version = ""
	s.Definitions = nil
	if s.Type == "" {
		s.Type = "object"
	}
	data, err := json.Marshal(s)
	if err != nil {
		return json.RawMessage(emptyObjectSchema)
	}
	return data
}

// ToolOption adjusts a tool definition.
type ToolOption func(*mcp.Tool)

// WithTitle sets the human-readable title annotation.
func WithTitle(title string) ToolOption {
	return func(t *mcp.Tool) { t.Annotations.Title = title }
}

// ReadOnly marks a tool that never modifies vendor state.
func ReadOnly() ToolOption {
	return func(t *mcp.Tool) {
		t.Annotations.ReadOnlyHint = boolPtr(true)
		t.Annotations.DestructiveHint = boolPtr(false)
		t.Annotations.IdempotentHint = boolPtr(true)
	}
}

// Destructive marks a tool that deletes or overwrites vendor data.
func Destructive() ToolOption {
	return func(t *mcp.Tool) {
		t.Annotations.ReadOnlyHint = boolPtr(false)
		t.Annotations.DestructiveHint = boolPtr(true)
	}
}

// Idempotent marks a tool whose repeated calls have no additional effect.
func Idempotent() ToolOption {
	return func(t *mcp.Tool) { t.Annotations.IdempotentHint = boolPtr(true) }
}

// NewTool builds a tool whose input schema is reflected from args.
// Every tool talks to a vendor API, so openWorld is always set.
func NewTool(name, description string, args any, opts ...ToolOption) mcp.Tool {
	tool := mcp.NewToolWithRawSchema(name, description, SchemaFor(args))
	tool.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    boolPtr(false),
		DestructiveHint: boolPtr(false),
		IdempotentHint:  boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
	for _, opt := range opts {
		opt(&tool)
	}
	return tool
}

// Typed builds a registry entry from a typed handler. Arguments are bound
// into T before the handler runs.
func Typed[T any](name, description string, handler mcp.TypedToolHandlerFunc[T], opts ...ToolOption) Tool {
	var zero T
	return Tool{
		Definition: NewTool(name, description, zero, opts...),
		Handler:    mcp.NewTypedToolHandler(handler),
	}
}

func boolPtr(b bool) *bool { return &b }
