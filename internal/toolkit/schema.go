package toolkit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaCache maps toolName:sha256(schema) to a compiled schema.
var schemaCache sync.Map

func schemaCacheKey(toolName string, schema []byte) string {
	sum := sha256.Sum256(schema)
	return toolName + ":" + hex.EncodeToString(sum[:])
}

func compileSchema(toolName string, schema []byte) (*jsonschema.Schema, error) {
	key := schemaCacheKey(toolName, schema)
	if v, ok := schemaCache.Load(key); ok {
		return v.(*jsonschema.Schema), nil
	}
	s, err := jsonschema.CompileString(toolName+".json", string(schema))
	if err != nil {
		return nil, err
	}
	schemaCache.Store(key, s)
	return s, nil
}

// inputSchema returns the JSON input schema of a tool definition.
func inputSchema(tool mcp.Tool) ([]byte, error) {
	if len(tool.RawInputSchema) > 0 {
		return tool.RawInputSchema, nil
	}
	return json.Marshal(tool.InputSchema)
}

func firstLeafValidationError(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	if err == nil {
		return nil
	}
	if len(err.Causes) == 0 {
		return err
	}
	for _, c := range err.Causes {
		if leaf := firstLeafValidationError(c); leaf != nil {
			return leaf
		}
	}
	return err
}

// ValidateArguments checks args against the tool's input schema. Arguments
// are normalized through a JSON round trip so Go ints and float64s compare
// alike.
func ValidateArguments(tool mcp.Tool, args map[string]any) error {
	schema, err := inputSchema(tool)
	if err != nil || len(schema) == 0 {
		return nil
	}
	s, err := compileSchema(tool.Name, schema)
	if err != nil {
		return fmt.Errorf("invalid tool inputSchema for %s: %w", tool.Name, err)
	}

	if args == nil {
		args = map[string]any{}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("arguments for %s are not valid JSON: %w", tool.Name, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("arguments for %s are not valid JSON: %w", tool.Name, err)
	}

	if err := s.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := firstLeafValidationError(ve)
			loc := leaf.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msg := leaf.Message
			if msg == "" {
				msg = leaf.Error()
			}
			return fmt.Errorf("args schema validation failed for %s at %s: %s", tool.Name, loc, msg)
		}
		return fmt.Errorf("args schema validation failed for %s: %v", tool.Name, err)
	}
	return nil
}
