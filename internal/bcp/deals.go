package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Deals builds the deals BCP.
func Deals(client *hubspot.Client) domain.BCP {
	svc := client.Deals()
	return domain.BCP{
		Domain:      "hubspotDeals",
		Description: "Read, create, update, and search HubSpot deals",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotGetDeal",
				Description: "Get a HubSpot deal by its ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"dealId":     domain.StringProp("The deal's HubSpot ID"),
					"properties": propertyListProp(),
				}, "dealId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					deal, err := svc.Get(ctx, stringParam(params, "dealId"), stringSliceParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Deal retrieved successfully", "deal": deal}, nil
				},
			},
			{
				Name:        "hubspotCreateDeal",
				Description: "Create a new HubSpot deal. Properties use internal names, e.g. dealname, amount, dealstage.",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"properties": propertiesProp("Deal properties keyed by internal name"),
				}, "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					deal, err := svc.Create(ctx, mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Deal created successfully", "deal": deal}, nil
				},
			},
			{
				Name:        "hubspotUpdateDeal",
				Description: "Update properties of an existing HubSpot deal",
				Operation:   "update",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"dealId":     domain.StringProp("The deal's HubSpot ID"),
					"properties": propertiesProp("Properties to update, keyed by internal name"),
				}, "dealId", "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					deal, err := svc.Update(ctx, stringParam(params, "dealId"), mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Deal updated successfully", "deal": deal}, nil
				},
			},
			{
				Name:        "hubspotSearchDeals",
				Description: "Search HubSpot deals by free-text query",
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
					return map[string]any{"message": "Deals search completed", "deals": page.Results, "paging": page.Paging}, nil
				},
			},
			{
				Name:        "hubspotRecentDeals",
				Description: "List the most recently modified HubSpot deals",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Recent(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent deals retrieved", "deals": page.Results}, nil
				},
			},
		},
	}
}
