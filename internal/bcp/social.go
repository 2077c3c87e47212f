package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Social builds the social media broadcasts BCP.
func Social(client *hubspot.Client) domain.BCP {
	svc := client.Social()
	return domain.BCP{
		Domain:      "hubspotSocial",
		Description: "Publish and inspect HubSpot social media broadcasts",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotListSocialChannels",
				Description: "List the social publishing channels connected to the portal",
				Operation:   "list",
				InputSchema: domain.ObjectSchema(nil),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					channels, err := svc.Channels(ctx)
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Social channels retrieved", "channels": channels}, nil
				},
			},
			{
				Name:        "hubspotCreateBroadcast",
				Description: "Schedule a social media post. Omit triggerAt to publish immediately.",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"channelGuid": domain.StringProp("Target channel GUID from hubspotListSocialChannels"),
					"body":        domain.StringProp("The post body text"),
					"triggerAt":   domain.JSONSchemaProps{Type: "integer", Description: "Publish time as epoch milliseconds"},
				}, "channelGuid", "body"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					broadcast, err := svc.CreateBroadcast(ctx,
						stringParam(params, "channelGuid"),
						stringParam(params, "body"),
						int64Param(params, "triggerAt", 0))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Broadcast created successfully", "broadcast": broadcast}, nil
				},
			},
			{
				Name:        "hubspotRecentBroadcasts",
				Description: "List recent social media broadcasts",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					broadcasts, err := svc.RecentBroadcasts(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent broadcasts retrieved", "broadcasts": broadcasts}, nil
				},
			},
		},
	}
}
