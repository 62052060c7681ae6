package registry

import (
	"context"
	"fmt"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolHandler executes one catalog query tool. It receives a context for
// cancellation and the arguments parsed from the MCP request, and returns
// the rendered text payload.
type ToolHandler func(ctx context.Context, args map[string]any) (string, error)

func buildTool(name, description string, inputSchema map[string]any) model.Tool {
	return model.Tool{
		Tool: mcp.Tool{
			Name:        name,
			Description: description,
			InputSchema: inputSchema,
		},
	}
}

// stringSchema builds an object schema whose properties are all strings.
// Parameter order in required mirrors the tool's documentation.
func stringSchema(required []string, props map[string]string) map[string]any {
	properties := make(map[string]any, len(props))
	for name, description := range props {
		properties[name] = map[string]any{
			"type":        "string",
			"description": description,
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// stringArg extracts a required, non-empty string argument. Non-emptiness is
// validated here, at the transport boundary, so the index and renderer never
// see blank parameters.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrMissingArgument, name)
	}
	return s, nil
}
