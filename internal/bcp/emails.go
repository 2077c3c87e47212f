package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Emails builds the logged-email BCP.
func Emails(client *hubspot.Client) domain.BCP {
	svc := client.Emails()
	return domain.BCP{
		Domain:      "hubspotEmails",
		Description: "Log and read HubSpot email engagements",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotCreateEmail",
				Description: "Log an email engagement in HubSpot",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"subject":   domain.StringProp("The email subject"),
					"text":      domain.StringProp("The email body text"),
					"direction": domain.JSONSchemaProps{Type: "string", Description: "EMAIL (outbound) or INCOMING_EMAIL", Enum: []any{"EMAIL", "INCOMING_EMAIL"}},
				}, "subject", "text"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					email, err := svc.Create(ctx,
						stringParam(params, "subject"),
						stringParam(params, "text"),
						stringParam(params, "direction"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Email logged successfully", "email": email}, nil
				},
			},
			{
				Name:        "hubspotGetEmail",
				Description: "Get a logged email engagement by its ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"emailId": domain.StringProp("The email engagement's HubSpot ID"),
				}, "emailId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					email, err := svc.Get(ctx, stringParam(params, "emailId"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Email retrieved successfully", "email": email}, nil
				},
			},
			{
				Name:        "hubspotRecentEmails",
				Description: "List the most recently modified email engagements",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Recent(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent emails retrieved", "emails": page.Results}, nil
				},
			},
		},
	}
}
