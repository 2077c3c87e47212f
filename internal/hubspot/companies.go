package hubspot

import "context"

var defaultCompanyProperties = []string{"name", "domain", "industry", "city", "phone", "hubspot_owner_id"}

// CompaniesService wraps the companies surface of the CRM API.
type CompaniesService struct {
	api objectAPI
}

// Companies returns the companies service for this client.
func (c *Client) Companies() *CompaniesService {
	return &CompaniesService{api: objectAPI{client: c, objectType: "companies"}}
}

// Get fetches one company by ID.
func (s *CompaniesService) Get(ctx context.Context, id string, properties []string) (*Object, error) {
	if len(properties) == 0 {
		properties = defaultCompanyProperties
	}
	return s.api.Get(ctx, id, properties)
}

// Create inserts a new company.
func (s *CompaniesService) Create(ctx context.Context, properties map[string]any) (*Object, error) {
	return s.api.Create(ctx, properties)
}

// Update patches an existing company.
func (s *CompaniesService) Update(ctx context.Context, id string, properties map[string]any) (*Object, error) {
	return s.api.Update(ctx, id, properties)
}

// Search runs a free-text or filtered company search.
func (s *CompaniesService) Search(ctx context.Context, req SearchRequest) (*ObjectPage, error) {
	if len(req.Properties) == 0 {
		req.Properties = defaultCompanyProperties
	}
	return s.api.Search(ctx, req)
}

// Recent lists the most recently modified companies.
func (s *CompaniesService) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	return s.api.Recent(ctx, limit)
}
