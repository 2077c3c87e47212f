package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Quotes builds the quotes BCP.
func Quotes(client *hubspot.Client) domain.BCP {
	svc := client.Quotes()
	return domain.BCP{
		Domain:      "hubspotQuotes",
		Description: "Read, create, and search HubSpot quotes",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotGetQuote",
				Description: "Get a HubSpot quote by its ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"quoteId":    domain.StringProp("The quote's HubSpot ID"),
					"properties": propertyListProp(),
				}, "quoteId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					quote, err := svc.Get(ctx, stringParam(params, "quoteId"), stringSliceParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Quote retrieved successfully", "quote": quote}, nil
				},
			},
			{
				Name:        "hubspotCreateQuote",
				Description: "Create a new HubSpot quote. Requires a title and an expiration date (ISO 8601).",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"title":          domain.StringProp("The quote title"),
					"expirationDate": domain.JSONSchemaProps{Type: "string", Format: "date-time", Description: "Quote expiration date, ISO 8601"},
					"properties":     propertiesProp("Additional quote properties keyed by internal name"),
				}, "title", "expirationDate"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					properties := map[string]any{
						"hs_title":           stringParam(params, "title"),
						"hs_expiration_date": stringParam(params, "expirationDate"),
					}
					for k, v := range mapParam(params, "properties") {
						properties[k] = v
					}
					quote, err := svc.Create(ctx, properties)
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Quote created successfully", "quote": quote}, nil
				},
			},
			{
				Name:        "hubspotSearchQuotes",
				Description: "Search HubSpot quotes by free-text query",
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
					return map[string]any{"message": "Quotes search completed", "quotes": page.Results, "paging": page.Paging}, nil
				},
			},
			{
				Name:        "hubspotRecentQuotes",
				Description: "List the most recently modified HubSpot quotes",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Recent(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent quotes retrieved", "quotes": page.Results}, nil
				},
			},
		},
	}
}
