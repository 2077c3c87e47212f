// Package hubspot is a thin client for the HubSpot REST API plus one
// service per CRM domain. All services share a single Client by
// composition; credential handling and status-code classification live
// here exactly once.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
)

// DefaultBaseURL is the production HubSpot API endpoint.
const DefaultBaseURL = "https://api.hubapi.com"

// placeholderTokens are credentials that allow the process to start without
// a configured HubSpot account. A client holding one never performs network
// I/O; domain calls fail with AUTH_ERROR instead.
var placeholderTokens = map[string]struct{}{
	"":                  {},
	"placeholder":       {},
	"your-access-token": {},
}

// Client talks to the HubSpot REST API. It is safe for concurrent use;
// after Init the only state consulted per call is immutable.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	placeholder bool
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests against httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the given access token. A syntactically invalid
// token (embedded whitespace) fails fast with CONFIG_ERROR. An empty or
// placeholder token is accepted so the server can start unconfigured, but
// the client stays unusable: every domain call returns AUTH_ERROR without
// touching the network.
func New(token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) != token || strings.ContainsAny(token, " \t\n") {
		return nil, domain.NewError(domain.CodeConfig, "access token is malformed")
	}
	_, placeholder := placeholderTokens[token]

	c := &Client{
		httpClient:  http.DefaultClient,
		baseURL:     DefaultBaseURL,
		token:       token,
		placeholder: placeholder,
		logger:      logger.With("component", "hubspot_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Init probes connectivity with a cheap read-only call so a bad credential
// surfaces before the first domain method. With a placeholder token Init
// succeeds without probing -- the server is allowed to come up unconfigured.
func (c *Client) Init(ctx context.Context) error {
	if c.placeholder {
		c.logger.Warn("HubSpot access token not configured; tool calls will fail until it is set")
		return nil
	}

	query := url.Values{"limit": {"1"}}
	if err := c.doJSON(ctx, http.MethodGet, "/crm/v3/objects/contacts", query, nil, nil); err != nil {
		be := domain.WrapError(err)
		return domain.NewErrorWithStatus(domain.CodeInit,
			fmt.Sprintf("connectivity probe failed: %s", be.Message), be.HTTPStatus)
	}
	c.logger.Info("HubSpot connectivity probe succeeded")
	return nil
}

// Usable reports whether the client holds a real credential.
func (c *Client) Usable() bool { return !c.placeholder }

// doJSON executes one API call. Status classification happens here and
// nowhere else: 401 is AUTH_ERROR, 404 is NOT_FOUND (transport-level code,
// never message sniffing), any other non-2xx is API_ERROR preserving the
// upstream status. Network failures are API_ERROR with status 500.
func (c *Client) doJSON(ctx context.Context, method, apiPath string, query url.Values, body, out any) error {
	if c.placeholder {
		return domain.NewError(domain.CodeAuth, "HubSpot access token is not configured")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.NewError(domain.CodeConfig, fmt.Sprintf("invalid base URL %q: %v", c.baseURL, err))
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + apiPath
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(slog.String("method", method), slog.String("path", apiPath))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("HTTP request failed", slog.Any("error", err))
		return domain.NewError(domain.CodeAPI, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewError(domain.CodeAPI, fmt.Sprintf("failed to read response body: %v", err))
	}
	log.Debug("Received HTTP response", slog.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(respBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return domain.NewError(domain.CodeAPI, fmt.Sprintf("failed to decode response: %v", err))
		}
		return nil
	}

	message := upstreamMessage(respBody)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.NewErrorWithStatus(domain.CodeAuth, message, resp.StatusCode)
	case http.StatusNotFound:
		return domain.NewErrorWithStatus(domain.CodeNotFound, message, resp.StatusCode)
	default:
		return domain.NewErrorWithStatus(domain.CodeAPI, message, resp.StatusCode)
	}
}

// upstreamMessage extracts the human-readable message from a HubSpot error
// body, falling back to the raw body.
func upstreamMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if len(body) == 0 {
		return "upstream request failed"
	}
	return string(body)
}
