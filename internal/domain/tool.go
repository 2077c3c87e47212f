package domain

import (
	"context"
	"fmt"
)

// ToolHandler executes a single tool invocation. Params have already been
// validated against the tool's input schema by the time a handler runs.
// Handlers return a result value (marshalled to JSON for the agent) or a
// classified error; they never encode failures into the result themselves.
type ToolHandler func(ctx context.Context, params map[string]any) (any, error)

// ToolDefinition is a single callable operation exposed over MCP,
// compliant with the Model Context Protocol (MCP).
// Based on MCP Spec 2025-03-26: https://modelcontextprotocol.io/specification/2025-03-26
type ToolDefinition struct {
	// Name MUST be unique across the whole server, not just within a BCP.
	Name string `json:"name"`

	// Description is what the LLM reads to decide when to use the tool.
	Description string `json:"description"`

	// Operation is the workflow verb behind the tool (get, create, update,
	// search, recent, delete, list). Drives operation-keyed suggestions.
	Operation string `json:"operation,omitempty"`

	// InputSchema defines the structure of the data the tool expects.
	// Uses JSON Schema format.
	InputSchema JSONSchemaProps `json:"inputSchema"`

	// Handler is invoked after schema validation passes.
	Handler ToolHandler `json:"-"`
}

// BCP (Bounded Context Pack) groups related tools sharing a domain and a
// service, e.g. "hubspotContacts". Constructed once at process start and
// never mutated afterwards.
type BCP struct {
	// Domain MUST be unique within the registry.
	Domain string `json:"domain"`

	// Description summarises the pack for listings.
	Description string `json:"description"`

	// Tools is the ordered list of tool definitions in this pack.
	Tools []ToolDefinition `json:"tools"`
}

// JSONSchemaProps represents the properties of a JSON schema,
// used for tool input definitions. Simplified to the subset the
// HubSpot tool surface actually needs.
type JSONSchemaProps struct {
	Type        string                     `json:"type"`
	Description string                     `json:"description,omitempty"`
	Properties  map[string]JSONSchemaProps `json:"properties,omitempty"`
	Required    []string                   `json:"required,omitempty"`
	Items       *JSONSchemaProps           `json:"items,omitempty"`
	Enum        []any                      `json:"enum,omitempty"`
	Format      string                     `json:"format,omitempty"`
}

// ObjectSchema is a convenience constructor for the common case of an
// object schema with named properties and a required list.
func ObjectSchema(props map[string]JSONSchemaProps, required ...string) JSONSchemaProps {
	return JSONSchemaProps{Type: "object", Properties: props, Required: required}
}

// StringProp returns a string-typed property with a description.
func StringProp(desc string) JSONSchemaProps {
	return JSONSchemaProps{Type: "string", Description: desc}
}

// Validate checks params against the schema: every required property must be
// present and every supplied property must conform to its declared type.
// Unknown properties are passed through untouched; the upstream API decides
// what to do with them.
func (s JSONSchemaProps) Validate(params map[string]any) error {
	if s.Type != "object" {
		return nil
	}
	for _, name := range s.Required {
		if _, ok := params[name]; !ok {
			return NewError(CodeValidation, fmt.Sprintf("missing required parameter %q", name))
		}
	}
	for name, value := range params {
		prop, ok := s.Properties[name]
		if !ok {
			continue
		}
		if err := prop.validateValue(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (s JSONSchemaProps) validateValue(name string, value any) error {
	if value == nil {
		return nil
	}
	switch s.Type {
	case "string":
		if _, ok := value.(string); !ok {
			return typeError(name, "string", value)
		}
	case "number":
		switch value.(type) {
		case float64, float32, int, int64:
		default:
			return typeError(name, "number", value)
		}
	case "integer":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return typeError(name, "integer", value)
			}
		default:
			return typeError(name, "integer", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return typeError(name, "boolean", value)
		}
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return typeError(name, "object", value)
		}
		if err := s.Validate(obj); err != nil {
			return err
		}
	case "array":
		arr, ok := value.([]any)
		if !ok {
			return typeError(name, "array", value)
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validateValue(fmt.Sprintf("%s[%d]", name, i), item); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func typeError(name, want string, got any) error {
	return NewError(CodeValidation, fmt.Sprintf("parameter %q must be a %s, got %T", name, want, got))
}
