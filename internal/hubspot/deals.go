package hubspot

import "context"

var defaultDealProperties = []string{"dealname", "amount", "dealstage", "pipeline", "closedate", "hubspot_owner_id"}

// DealsService wraps the deals surface of the CRM API.
type DealsService struct {
	api objectAPI
}

// Deals returns the deals service for this client.
func (c *Client) Deals() *DealsService {
	return &DealsService{api: objectAPI{client: c, objectType: "deals"}}
}

// Get fetches one deal by ID.
func (s *DealsService) Get(ctx context.Context, id string, properties []string) (*Object, error) {
	if len(properties) == 0 {
		properties = defaultDealProperties
	}
	return s.api.Get(ctx, id, properties)
}

// Create inserts a new deal.
func (s *DealsService) Create(ctx context.Context, properties map[string]any) (*Object, error) {
	return s.api.Create(ctx, properties)
}

// Update patches an existing deal.
func (s *DealsService) Update(ctx context.Context, id string, properties map[string]any) (*Object, error) {
	return s.api.Update(ctx, id, properties)
}

// Search runs a free-text or filtered deal search.
func (s *DealsService) Search(ctx context.Context, req SearchRequest) (*ObjectPage, error) {
	if len(req.Properties) == 0 {
		req.Properties = defaultDealProperties
	}
	return s.api.Search(ctx, req)
}

// Recent lists the most recently modified deals.
func (s *DealsService) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	return s.api.Recent(ctx, limit)
}
