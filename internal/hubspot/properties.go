package hubspot

import (
	"context"
	"net/http"
)

// Property describes a CRM property definition.
type Property struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Type        string           `json:"type"`
	FieldType   string           `json:"fieldType"`
	GroupName   string           `json:"groupName,omitempty"`
	Description string           `json:"description,omitempty"`
	Options     []PropertyOption `json:"options,omitempty"`
}

// PropertyOption is one choice of an enumeration property.
type PropertyOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PropertyPage is the list shape of the properties API.
type PropertyPage struct {
	Results []Property `json:"results"`
}

// PropertiesService wraps the CRM property-definition API.
type PropertiesService struct {
	client *Client
}

// Properties returns the properties service for this client.
func (c *Client) Properties() *PropertiesService {
	return &PropertiesService{client: c}
}

// List returns all property definitions for an object type
// (contacts, companies, deals, quotes, ...).
func (s *PropertiesService) List(ctx context.Context, objectType string) (*PropertyPage, error) {
	var page PropertyPage
	if err := s.client.doJSON(ctx, http.MethodGet, "/crm/v3/properties/"+objectType, nil, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a single property definition.
func (s *PropertiesService) Get(ctx context.Context, objectType, name string) (*Property, error) {
	var prop Property
	if err := s.client.doJSON(ctx, http.MethodGet, "/crm/v3/properties/"+objectType+"/"+name, nil, nil, &prop); err != nil {
		return nil, err
	}
	return &prop, nil
}

// Create defines a new property on an object type.
func (s *PropertiesService) Create(ctx context.Context, objectType string, prop Property) (*Property, error) {
	var created Property
	if err := s.client.doJSON(ctx, http.MethodPost, "/crm/v3/properties/"+objectType, nil, prop, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
