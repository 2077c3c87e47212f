package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Contacts builds the contacts BCP.
func Contacts(client *hubspot.Client) domain.BCP {
	svc := client.Contacts()
	return domain.BCP{
		Domain:      "hubspotContacts",
		Description: "Read, create, update, and search HubSpot contacts",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotGetContact",
				Description: "Get a HubSpot contact by its ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"contactId":  domain.StringProp("The contact's HubSpot ID"),
					"properties": propertyListProp(),
				}, "contactId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					contact, err := svc.Get(ctx, stringParam(params, "contactId"), stringSliceParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Contact retrieved successfully", "contact": contact}, nil
				},
			},
			{
				Name:        "hubspotCreateContact",
				Description: "Create a new HubSpot contact. Properties use HubSpot internal names, e.g. firstname, lastname, email.",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"properties": propertiesProp("Contact properties keyed by internal name"),
				}, "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					contact, err := svc.Create(ctx, mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Contact created successfully", "contact": contact}, nil
				},
			},
			{
				Name:        "hubspotUpdateContact",
				Description: "Update properties of an existing HubSpot contact",
				Operation:   "update",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"contactId":  domain.StringProp("The contact's HubSpot ID"),
					"properties": propertiesProp("Properties to update, keyed by internal name"),
				}, "contactId", "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					contact, err := svc.Update(ctx, stringParam(params, "contactId"), mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Contact updated successfully", "contact": contact}, nil
				},
			},
			{
				Name:        "hubspotSearchContacts",
				Description: "Search HubSpot contacts by free-text query",
				Operation:   "search",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"query":      domain.StringProp("Free-text search query"),
					"properties": propertyListProp(),
					"limit":      limitProp(),
					"after":      domain.StringProp("Paging cursor from a previous search"),
				}, "query"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Search(ctx, searchRequestFrom(params))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Contacts search completed", "contacts": page.Results, "paging": page.Paging}, nil
				},
			},
			{
				Name:        "hubspotRecentContacts",
				Description: "List the most recently modified HubSpot contacts",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Recent(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent contacts retrieved", "contacts": page.Results}, nil
				},
			},
		},
	}
}
