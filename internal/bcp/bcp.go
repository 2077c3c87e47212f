// Package bcp defines the Bounded Context Packs: one pack per HubSpot CRM
// domain, each a list of tool definitions over the shared hubspot.Client.
// Handlers only extract parameters, call the service, and shape the result;
// validation, error classification, and suggestion injection belong to the
// registry and client layers.
package bcp

import (
	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// All returns every BCP in registration order.
func All(client *hubspot.Client) []domain.BCP {
	return []domain.BCP{
		Contacts(client),
		Companies(client),
		Deals(client),
		Quotes(client),
		Properties(client),
		Associations(client),
		Notes(client),
		Emails(client),
		Social(client),
		Owners(client),
	}
}

// stringParam returns the named parameter as a string, or "" when absent.
func stringParam(params map[string]any, name string) string {
	if v, ok := params[name].(string); ok {
		return v
	}
	return ""
}

// intParam returns the named parameter as an int. JSON numbers arrive as
// float64; schema validation already rejected non-integers.
func intParam(params map[string]any, name string, def int) int {
	switch v := params[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

// int64Param is intParam for epoch-millisecond values.
func int64Param(params map[string]any, name string, def int64) int64 {
	switch v := params[name].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	}
	return def
}

// mapParam returns the named parameter as an object, or nil when absent.
func mapParam(params map[string]any, name string) map[string]any {
	if v, ok := params[name].(map[string]any); ok {
		return v
	}
	return nil
}

// stringSliceParam returns the named parameter as a string slice.
func stringSliceParam(params map[string]any, name string) []string {
	raw, ok := params[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// limitProp is the shared schema fragment for paging limits.
func limitProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{Type: "integer", Description: "Maximum number of results to return (default 10)"}
}

// propertiesProp is the shared schema fragment for a property-value object.
func propertiesProp(desc string) domain.JSONSchemaProps {
	return domain.JSONSchemaProps{Type: "object", Description: desc}
}

// propertyListProp is the shared schema fragment for a property-name list.
func propertyListProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "array",
		Description: "Property names to include in the response",
		Items:       &domain.JSONSchemaProps{Type: "string"},
	}
}

// searchRequestFrom builds the common CRM search request from tool params.
func searchRequestFrom(params map[string]any) hubspot.SearchRequest {
	return hubspot.SearchRequest{
		Query:      stringParam(params, "query"),
		Properties: stringSliceParam(params, "properties"),
		Limit:      intParam(params, "limit", 10),
		After:      stringParam(params, "after"),
	}
}
