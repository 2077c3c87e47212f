package hubspot

import (
	"context"
	"time"
)

// Notes and emails are engagement objects: the same CRM object shape as
// contacts or deals, with hs_-prefixed properties and a required timestamp.

var defaultNoteProperties = []string{"hs_note_body", "hs_timestamp", "hubspot_owner_id"}

// NotesService wraps the notes engagement surface.
type NotesService struct {
	api objectAPI
}

// Notes returns the notes service for this client.
func (c *Client) Notes() *NotesService {
	return &NotesService{api: objectAPI{client: c, objectType: "notes"}}
}

// Create writes a note. The timestamp defaults to now when absent, which
// HubSpot otherwise rejects.
func (s *NotesService) Create(ctx context.Context, body string, extra map[string]any) (*Object, error) {
	properties := map[string]any{
		"hs_note_body": body,
		"hs_timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range extra {
		properties[k] = v
	}
	return s.api.Create(ctx, properties)
}

// Get fetches one note by ID.
func (s *NotesService) Get(ctx context.Context, id string) (*Object, error) {
	return s.api.Get(ctx, id, defaultNoteProperties)
}

// Update patches a note's properties.
func (s *NotesService) Update(ctx context.Context, id string, properties map[string]any) (*Object, error) {
	return s.api.Update(ctx, id, properties)
}

// Delete archives a note.
func (s *NotesService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, id)
}

// Recent lists the most recently modified notes.
func (s *NotesService) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	return s.api.Recent(ctx, limit)
}

// List returns one plain page of notes.
func (s *NotesService) List(ctx context.Context, limit int, after string) (*ObjectPage, error) {
	return s.api.List(ctx, limit, after)
}

var defaultEmailProperties = []string{"hs_email_subject", "hs_email_text", "hs_email_direction", "hs_timestamp"}

// EmailsService wraps the logged-email engagement surface.
type EmailsService struct {
	api objectAPI
}

// Emails returns the emails service for this client.
func (c *Client) Emails() *EmailsService {
	return &EmailsService{api: objectAPI{client: c, objectType: "emails"}}
}

// Create logs an email engagement.
func (s *EmailsService) Create(ctx context.Context, subject, text, direction string) (*Object, error) {
	if direction == "" {
		direction = "EMAIL"
	}
	properties := map[string]any{
		"hs_email_subject":   subject,
		"hs_email_text":      text,
		"hs_email_direction": direction,
		"hs_timestamp":       time.Now().UTC().Format(time.RFC3339),
	}
	return s.api.Create(ctx, properties)
}

// Get fetches one logged email by ID.
func (s *EmailsService) Get(ctx context.Context, id string) (*Object, error) {
	return s.api.Get(ctx, id, defaultEmailProperties)
}

// Recent lists the most recently modified email engagements.
func (s *EmailsService) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	return s.api.Recent(ctx, limit)
}
