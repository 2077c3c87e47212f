package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Owners builds the owners BCP.
func Owners(client *hubspot.Client) domain.BCP {
	svc := client.Owners()
	return domain.BCP{
		Domain:      "hubspotOwners",
		Description: "Look up HubSpot owners for record assignment",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotSearchOwners",
				Description: "List HubSpot owners, optionally filtered by email",
				Operation:   "search",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"email": domain.StringProp("Filter owners by exact email address"),
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Search(ctx, stringParam(params, "email"), intParam(params, "limit", 100))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Owners retrieved successfully", "owners": page.Results}, nil
				},
			},
			{
				Name:        "hubspotGetOwner",
				Description: "Get a HubSpot owner by ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"ownerId": domain.StringProp("The owner's HubSpot ID"),
				}, "ownerId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					owner, err := svc.Get(ctx, stringParam(params, "ownerId"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Owner retrieved successfully", "owner": owner}, nil
				},
			},
		},
	}
}
