package hubspot

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SocialChannel is a publishing channel connected to the portal.
type SocialChannel struct {
	ChannelGUID string `json:"channelGuid"`
	ChannelID   string `json:"channelId"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
}

// Broadcast is a scheduled or published social post.
type Broadcast struct {
	BroadcastGUID string           `json:"broadcastGuid"`
	ChannelGUID   string           `json:"channelGuid"`
	Status        string           `json:"status"`
	Content       BroadcastContent `json:"content"`
	TriggerAt     int64            `json:"triggerAt,omitempty"`
}

// BroadcastContent is the post body.
type BroadcastContent struct {
	Body string `json:"body"`
}

// SocialService wraps the social media broadcast API. This is the legacy
// /broadcast/v1 surface; HubSpot has no v3 equivalent.
type SocialService struct {
	client *Client
}

// Social returns the social media service for this client.
func (c *Client) Social() *SocialService {
	return &SocialService{client: c}
}

// Channels lists the connected publishing channels.
func (s *SocialService) Channels(ctx context.Context) ([]SocialChannel, error) {
	var channels []SocialChannel
	if err := s.client.doJSON(ctx, http.MethodGet, "/broadcast/v1/channels/setting/publish/current", nil, nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// CreateBroadcast schedules a post on a channel. triggerAt of zero means
// publish immediately.
func (s *SocialService) CreateBroadcast(ctx context.Context, channelGUID, body string, triggerAt int64) (*Broadcast, error) {
	req := Broadcast{
		ChannelGUID: channelGUID,
		Content:     BroadcastContent{Body: body},
		TriggerAt:   triggerAt,
	}
	var created Broadcast
	if err := s.client.doJSON(ctx, http.MethodPost, "/broadcast/v1/broadcasts", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RecentBroadcasts lists recent posts, newest first.
func (s *SocialService) RecentBroadcasts(ctx context.Context, limit int) ([]Broadcast, error) {
	if limit <= 0 {
		limit = 10
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var broadcasts []Broadcast
	if err := s.client.doJSON(ctx, http.MethodGet, "/broadcast/v1/broadcasts", query, nil, &broadcasts); err != nil {
		return nil, err
	}
	return broadcasts, nil
}
