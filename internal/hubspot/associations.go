package hubspot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Association is one link between two CRM records.
type Association struct {
	ToObjectID string            `json:"toObjectId"`
	Types      []AssociationType `json:"associationTypes,omitempty"`
}

// AssociationType identifies the category and label of a link.
type AssociationType struct {
	Category string `json:"category"`
	TypeID   int    `json:"typeId"`
	Label    string `json:"label,omitempty"`
}

// AssociationPage is one page of associations for a record.
type AssociationPage struct {
	Results []Association `json:"results"`
	Paging  *Paging       `json:"paging,omitempty"`
}

// AssociationsService wraps the v4 associations API.
type AssociationsService struct {
	client *Client
}

// Associations returns the associations service for this client.
func (c *Client) Associations() *AssociationsService {
	return &AssociationsService{client: c}
}

func associationPath(fromType, fromID, toType string) string {
	return fmt.Sprintf("/crm/v4/objects/%s/%s/associations/%s", fromType, fromID, toType)
}

// Create links two records with the default association type.
func (s *AssociationsService) Create(ctx context.Context, fromType, fromID, toType, toID string) error {
	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/default/%s/%s", fromType, fromID, toType, toID)
	return s.client.doJSON(ctx, http.MethodPut, path, nil, nil, nil)
}

// Delete removes every association between two records.
func (s *AssociationsService) Delete(ctx context.Context, fromType, fromID, toType, toID string) error {
	path := associationPath(fromType, fromID, toType) + "/" + toID
	return s.client.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// List returns the records of toType associated with one record.
func (s *AssociationsService) List(ctx context.Context, fromType, fromID, toType string, limit int) (*AssociationPage, error) {
	if limit <= 0 {
		limit = 100
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var page AssociationPage
	if err := s.client.doJSON(ctx, http.MethodGet, associationPath(fromType, fromID, toType), query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
