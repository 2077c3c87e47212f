package hubspot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
)

// Object is a generic HubSpot CRM record. Contacts, companies, deals and
// quotes all share this shape; only the property names differ.
type Object struct {
	ID         string         `json:"id"`
	Properties map[string]any `json:"properties"`
	CreatedAt  string         `json:"createdAt,omitempty"`
	UpdatedAt  string         `json:"updatedAt,omitempty"`
	Archived   bool           `json:"archived,omitempty"`
}

// ObjectPage is one page of CRM records.
type ObjectPage struct {
	Results []Object `json:"results"`
	Paging  *Paging  `json:"paging,omitempty"`
	Total   int      `json:"total,omitempty"`
}

// Paging carries the cursor for the next page.
type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

// PagingNext is the forward cursor.
type PagingNext struct {
	After string `json:"after"`
	Link  string `json:"link,omitempty"`
}

// SearchFilter is one equality/comparison clause in a CRM search.
type SearchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value,omitempty"`
}

// SearchRequest is the body of a CRM search call.
type SearchRequest struct {
	Query        string `json:"query,omitempty"`
	FilterGroups []struct {
		Filters []SearchFilter `json:"filters"`
	} `json:"filterGroups,omitempty"`
	Properties []string `json:"properties,omitempty"`
	Sorts      []string `json:"sorts,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	After      string   `json:"after,omitempty"`
}

// objectAPI implements the CRUD surface shared by every CRM object type.
// Domain services hold one by value; there is no per-service credential or
// init boilerplate beyond what Client already does.
type objectAPI struct {
	client     *Client
	objectType string
}

func (a objectAPI) basePath() string {
	return "/crm/v3/objects/" + a.objectType
}

// Get fetches one record by ID, optionally restricted to named properties.
func (a objectAPI) Get(ctx context.Context, id string, properties []string) (*Object, error) {
	query := url.Values{}
	for _, p := range properties {
		query.Add("properties", p)
	}
	var obj Object
	if err := a.client.doJSON(ctx, http.MethodGet, a.basePath()+"/"+id, query, nil, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// Create inserts a record with the given properties.
func (a objectAPI) Create(ctx context.Context, properties map[string]any) (*Object, error) {
	body := map[string]any{"properties": properties}
	var obj Object
	if err := a.client.doJSON(ctx, http.MethodPost, a.basePath(), nil, body, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// Update patches a record's properties. An empty property set is rejected
// locally; HubSpot would accept it and silently do nothing.
func (a objectAPI) Update(ctx context.Context, id string, properties map[string]any) (*Object, error) {
	if len(properties) == 0 {
		return nil, errNoUpdateProperties(a.objectType)
	}
	body := map[string]any{"properties": properties}
	var obj Object
	if err := a.client.doJSON(ctx, http.MethodPatch, a.basePath()+"/"+id, nil, body, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// Delete archives a record.
func (a objectAPI) Delete(ctx context.Context, id string) error {
	return a.client.doJSON(ctx, http.MethodDelete, a.basePath()+"/"+id, nil, nil, nil)
}

// Search runs a CRM search request.
func (a objectAPI) Search(ctx context.Context, req SearchRequest) (*ObjectPage, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	var page ObjectPage
	if err := a.client.doJSON(ctx, http.MethodPost, a.basePath()+"/search", nil, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Recent lists records ordered by last modification, newest first.
func (a objectAPI) Recent(ctx context.Context, limit int) (*ObjectPage, error) {
	if limit <= 0 {
		limit = 10
	}
	req := SearchRequest{
		Sorts: []string{"-hs_lastmodifieddate"},
		Limit: limit,
	}
	return a.Search(ctx, req)
}

// List returns one plain page of records.
func (a objectAPI) List(ctx context.Context, limit int, after string) (*ObjectPage, error) {
	if limit <= 0 {
		limit = 10
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if after != "" {
		query.Set("after", after)
	}
	var page ObjectPage
	if err := a.client.doJSON(ctx, http.MethodGet, a.basePath(), query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func errNoUpdateProperties(objectType string) error {
	return domain.NewError(domain.CodeValidation,
		fmt.Sprintf("update requires at least one property for %s", objectType))
}
