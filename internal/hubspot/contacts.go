package hubspot

import "context"

// defaultContactProperties are requested on reads when the caller does not
// name any.
var defaultContactProperties = []string{"firstname", "lastname", "email", "phone", "company", "hubspot_owner_id"}

// ContactsService wraps the contacts surface of the CRM API.
type ContactsService struct {
	api objectAPI
}

// Contacts returns the contacts service for this client.
func (c *Client) Contacts() *ContactsService {
	return &ContactsService{api: objectAPI{client: c, objectType: "contacts"}}
}

// Get fetches one contact by ID.
func (s *ContactsService) Get(ctx context.Context, id string, properties []string) (*Object, error) {
	if len(properties) == 0 {
		properties = defaultContactProperties
	}
	return s.api.Get(ctx, id, properties)
}

// Create inserts a new contact.
func (s *ContactsService) Create(ctx context.Context, properties map[string]any) (*Object, error) {
	return s.api.Create(ctx, properties)
}

// Update patches an existing contact.
func (s *ContactsService) Update(ctx context.Context, id string, properties map[string]any) (*Object, error) {
	return s.api.Update(ctx, id, properties)
}

// Search runs a free-text or filtered contact search.
func (s *ContactsService) Search(ctx context.Context, req SearchRequest) (*ObjectPage, error) {
	if len(req.Properties) == 0 {
		req.Properties = defaultContactProperties
	}
	return s.api.Search(ctx, req)
}

// Recent lists the most recently modified contacts.
func (s *ContactsService) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	return s.api.Recent(ctx, limit)
}
