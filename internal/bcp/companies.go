package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Companies builds the companies BCP.
func Companies(client *hubspot.Client) domain.BCP {
	svc := client.Companies()
	return domain.BCP{
		Domain:      "hubspotCompanies",
		Description: "Read, create, update, and search HubSpot companies",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotGetCompany",
				Description: "Get a HubSpot company by its ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"companyId":  domain.StringProp("The company's HubSpot ID"),
					"properties": propertyListProp(),
				}, "companyId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					company, err := svc.Get(ctx, stringParam(params, "companyId"), stringSliceParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Company retrieved successfully", "company": company}, nil
				},
			},
			{
				Name:        "hubspotCreateCompany",
				Description: "Create a new HubSpot company. Properties use internal names, e.g. name, domain, industry.",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"properties": propertiesProp("Company properties keyed by internal name"),
				}, "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					company, err := svc.Create(ctx, mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Company created successfully", "company": company}, nil
				},
			},
			{
				Name:        "hubspotUpdateCompany",
				Description: "Update properties of an existing HubSpot company",
				Operation:   "update",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"companyId":  domain.StringProp("The company's HubSpot ID"),
					"properties": propertiesProp("Properties to update, keyed by internal name"),
				}, "companyId", "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					company, err := svc.Update(ctx, stringParam(params, "companyId"), mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Company updated successfully", "company": company}, nil
				},
			},
			{
				Name:        "hubspotSearchCompanies",
				Description: "Search HubSpot companies by free-text query",
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
					return map[string]any{"message": "Companies search completed", "companies": page.Results, "paging": page.Paging}, nil
				},
			},
			{
				Name:        "hubspotRecentCompanies",
				Description: "List the most recently modified HubSpot companies",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Recent(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent companies retrieved", "companies": page.Results}, nil
				},
			},
		},
	}
}
