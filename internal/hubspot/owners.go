package hubspot

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Owner is a HubSpot user that records can be assigned to.
type Owner struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserID    int64  `json:"userId,omitempty"`
	Archived  bool   `json:"archived,omitempty"`
}

// OwnerPage is one page of owners.
type OwnerPage struct {
	Results []Owner `json:"results"`
	Paging  *Paging `json:"paging,omitempty"`
}

// OwnersService wraps the owners API.
type OwnersService struct {
	client *Client
}

// Owners returns the owners service for this client.
func (c *Client) Owners() *OwnersService {
	return &OwnersService{client: c}
}

// Search lists owners, optionally filtered by email.
func (s *OwnersService) Search(ctx context.Context, email string, limit int) (*OwnerPage, error) {
	if limit <= 0 {
		limit = 100
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if email != "" {
		query.Set("email", email)
	}
	var page OwnerPage
	if err := s.client.doJSON(ctx, http.MethodGet, "/crm/v3/owners", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches one owner by ID.
func (s *OwnersService) Get(ctx context.Context, id string) (*Owner, error) {
	var owner Owner
	if err := s.client.doJSON(ctx, http.MethodGet, "/crm/v3/owners/"+id, nil, nil, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}
