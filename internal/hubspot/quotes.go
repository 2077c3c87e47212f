package hubspot

import "context"

var defaultQuoteProperties = []string{"hs_title", "hs_expiration_date", "hs_status", "hs_quote_amount", "hubspot_owner_id"}

// QuotesService wraps the quotes surface of the CRM API.
type QuotesService struct {
	api objectAPI
}

// Quotes returns the quotes service for this client.
func (c *Client) Quotes() *QuotesService {
	return &QuotesService{api: objectAPI{client: c, objectType: "quotes"}}
}

// Get fetches one quote by ID.
func (s *QuotesService) Get(ctx context.Context, id string, properties []string) (*Object, error) {
	if len(properties) == 0 {
		properties = defaultQuoteProperties
	}
	return s.api.Get(ctx, id, properties)
}

// Create inserts a new quote. HubSpot requires hs_title and
// hs_expiration_date; that is enforced at the tool schema level.
func (s *QuotesService) Create(ctx context.Context, properties map[string]any) (*Object, error) {
	return s.api.Create(ctx, properties)
}

// Search runs a free-text or filtered quote search.
func (s *QuotesService) Search(ctx context.Context, req SearchRequest) (*ObjectPage, error) {
	if len(req.Properties) == 0 {
		req.Properties = defaultQuoteProperties
	}
	return s.api.Search(ctx, req)
}

// Recent lists the most recently modified quotes.
func (s *QuotesService) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	return s.api.Recent(ctx, limit)
}
