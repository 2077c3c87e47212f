package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Associations builds the associations BCP.
func Associations(client *hubspot.Client) domain.BCP {
	svc := client.Associations()
	fromTypeProp := domain.StringProp("Source object type, e.g. contacts")
	toTypeProp := domain.StringProp("Target object type, e.g. companies")
	return domain.BCP{
		Domain:      "hubspotAssociations",
		Description: "Link and unlink HubSpot CRM records",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotCreateAssociation",
				Description: "Associate two CRM records using the default association type",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"fromObjectType": fromTypeProp,
					"fromObjectId":   domain.StringProp("Source record ID"),
					"toObjectType":   toTypeProp,
					"toObjectId":     domain.StringProp("Target record ID"),
				}, "fromObjectType", "fromObjectId", "toObjectType", "toObjectId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					err := svc.Create(ctx,
						stringParam(params, "fromObjectType"), stringParam(params, "fromObjectId"),
						stringParam(params, "toObjectType"), stringParam(params, "toObjectId"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Association created successfully"}, nil
				},
			},
			{
				Name:        "hubspotDeleteAssociation",
				Description: "Remove all associations between two CRM records",
				Operation:   "delete",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"fromObjectType": fromTypeProp,
					"fromObjectId":   domain.StringProp("Source record ID"),
					"toObjectType":   toTypeProp,
					"toObjectId":     domain.StringProp("Target record ID"),
				}, "fromObjectType", "fromObjectId", "toObjectType", "toObjectId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					err := svc.Delete(ctx,
						stringParam(params, "fromObjectType"), stringParam(params, "fromObjectId"),
						stringParam(params, "toObjectType"), stringParam(params, "toObjectId"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Association deleted successfully"}, nil
				},
			},
			{
				Name:        "hubspotListAssociations",
				Description: "List records of a target type associated with a CRM record",
				Operation:   "list",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"fromObjectType": fromTypeProp,
					"fromObjectId":   domain.StringProp("Source record ID"),
					"toObjectType":   toTypeProp,
					"limit":          limitProp(),
				}, "fromObjectType", "fromObjectId", "toObjectType"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.List(ctx,
						stringParam(params, "fromObjectType"), stringParam(params, "fromObjectId"),
						stringParam(params, "toObjectType"), intParam(params, "limit", 100))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Associations retrieved successfully", "associations": page.Results}, nil
				},
			},
		},
	}
}
