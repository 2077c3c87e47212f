package bcp

import (
	"context"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
)

// Notes builds the notes BCP.
func Notes(client *hubspot.Client) domain.BCP {
	svc := client.Notes()
	return domain.BCP{
		Domain:      "hubspotNotes",
		Description: "Create and manage HubSpot note engagements",
		Tools: []domain.ToolDefinition{
			{
				Name:        "hubspotCreateNote",
				Description: "Create a note engagement. Associate it to a record afterwards with hubspotCreateAssociation.",
				Operation:   "create",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"body":       domain.StringProp("The note body text"),
					"properties": propertiesProp("Additional note properties keyed by internal name"),
				}, "body"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					note, err := svc.Create(ctx, stringParam(params, "body"), mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Note created successfully", "note": note}, nil
				},
			},
			{
				Name:        "hubspotGetNote",
				Description: "Get a note engagement by its ID",
				Operation:   "get",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"noteId": domain.StringProp("The note's HubSpot ID"),
				}, "noteId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					note, err := svc.Get(ctx, stringParam(params, "noteId"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Note retrieved successfully", "note": note}, nil
				},
			},
			{
				Name:        "hubspotUpdateNote",
				Description: "Update properties of a note engagement",
				Operation:   "update",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"noteId":     domain.StringProp("The note's HubSpot ID"),
					"properties": propertiesProp("Properties to update, e.g. hs_note_body"),
				}, "noteId", "properties"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					note, err := svc.Update(ctx, stringParam(params, "noteId"), mapParam(params, "properties"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Note updated successfully", "note": note}, nil
				},
			},
			{
				Name:        "hubspotDeleteNote",
				Description: "Archive a note engagement",
				Operation:   "delete",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"noteId": domain.StringProp("The note's HubSpot ID"),
				}, "noteId"),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					if err := svc.Delete(ctx, stringParam(params, "noteId")); err != nil {
						return nil, err
					}
					return map[string]any{"message": "Note deleted successfully"}, nil
				},
			},
			{
				Name:        "hubspotRecentNotes",
				Description: "List the most recently modified notes",
				Operation:   "recent",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.Recent(ctx, intParam(params, "limit", 10))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Recent notes retrieved", "notes": page.Results}, nil
				},
			},
			{
				Name:        "hubspotListNotes",
				Description: "List notes page by page",
				Operation:   "list",
				InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
					"limit": limitProp(),
					"after": domain.StringProp("Paging cursor from a previous page"),
				}),
				Handler: func(ctx context.Context, params map[string]any) (any, error) {
					page, err := svc.List(ctx, intParam(params, "limit", 10), stringParam(params, "after"))
					if err != nil {
						return nil, err
					}
					return map[string]any{"message": "Notes retrieved successfully", "notes": page.Results, "paging": page.Paging}, nil
				},
			},
		},
	}
}
