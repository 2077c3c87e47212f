package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Properties builds the property-definitions BCP.
func Properties(client *hubspot.Client) domain.BCP {
	svc := client.Properties()
	objectTypeProp := domain.StringProp("CRM object type: contacts, companies, deals, or quotes")
	return domain.BCP{
		Domain:      "hubspotProperties",
		Description: "Inspect and define HubSpot CRM property definitions",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotListProperties",
				Description: "List all property definitions for a CRM object type",
				Operation:   "list",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"objectType": objectTypeProp,
				}, "objectType"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.List(ctx, stringParam(params, "objectType"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Properties retrieved successfully", "properties": page.Results}, nil
				},
			},
			{
				Name:        "hubspotGetProperty",
				Description: "Get a single property definition by name",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"objectType": objectTypeProp,
					"name":       domain.StringProp("The property's internal name"),
				}, "objectType", "name"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					prop, err := svc.Get(ctx, stringParam(params, "objectType"), stringParam(params, "name"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Property retrieved successfully", "property": prop}, nil
				},
			},
			{
				Name:        "hubspotCreateProperty",
				Description: "Define a new custom property on a CRM object type",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"objectType": objectTypeProp,
					"name":       domain.StringProp("Internal name for the new property"),
					"label":      domain.StringProp("Display label"),
					"type":       domain.StringProp("Data type: string, number, date, datetime, enumeration, or bool"),
					"fieldType":  domain.StringProp("Form field type: text, textarea, number, date, select, checkbox, ..."),
					"groupName":  domain.StringProp("Property group (default: <objectType>information)"),
				}, "objectType", "name", "label", "type", "fieldType"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					objectType := stringParam(params, "objectType")
					groupName := stringParam(params, "groupName")
					if groupName == "" {
						groupName = objectType + "information"
					}
					prop, err := svc.Create(ctx, objectType, hubspot.Property{
						Name:      stringParam(params, "name"),
						Label:     stringParam(params, "label"),
						Type:      stringParam(params, "type"),
						FieldType: stringParam(params, "fieldType"),
						GroupName: groupName,
					})
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Property created successfully", "property": prop}, nil
				},
			},
		},
	}
}
