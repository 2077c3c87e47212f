// Package dashboard serves the analytics dashboard API: thin proxy routes
// to an external backend, falling back to the local analytics store when no
// backend is configured.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/profsynapse/hubspot-mcp/internal/analytics"
)

// Handlers holds dependencies for the dashboard HTTP handlers.
type Handlers struct {
	backendURL string
	store      *analytics.Store
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHandlers creates the dashboard handlers. backendURL may be empty, in
// which case /api/analytics is answered from the local store and the auth
// routes report the backend as unavailable.
func NewHandlers(backendURL string, store *analytics.Store, httpClient *http.Client, logger *slog.Logger) *Handlers {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Handlers{
		backendURL: backendURL,
		store:      store,
		httpClient: httpClient,
		logger:     logger.With("component", "dashboard"),
	}
}

// RegisterRoutes sets up the dashboard routes.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/analytics", h.handleAnalytics)
	mux.HandleFunc("GET /api/auth/check", h.handleAuthCheck)
	mux.HandleFunc("POST /api/auth", h.handleAuth)
}

// fallbackAnalytics is the shape returned when neither the backend nor the
// local store can produce a summary.
func fallbackAnalytics() analytics.Summary {
	return analytics.Summary{ToolUsage: []analytics.ToolUsage{}, Errors: []analytics.ErrorCount{}}
}

func (h *Handlers) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = 7
	}

	if h.backendURL == "" {
		if h.store == nil {
			h.writeJSON(w, http.StatusServiceUnavailable, fallbackAnalytics())
			return
		}
		summary, err := h.store.Summarize(r.Context(), days)
		if err != nil {
			h.logger.Error("Failed to summarize local analytics", slog.Any("error", err))
			h.writeJSON(w, http.StatusServiceUnavailable, fallbackAnalytics())
			return
		}
		h.writeJSON(w, http.StatusOK, summary)
		return
	}

	url := fmt.Sprintf("%s/api/analytics?days=%d", h.backendURL, days)
	resp, err := h.forward(r.Context(), http.MethodGet, url, nil, r)
	if err != nil {
		h.logger.Warn("Analytics backend unreachable", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, fallbackAnalytics())
		return
	}
	defer resp.Body.Close()
	h.relay(w, resp, false)
}

func (h *Handlers) handleAuthCheck(w http.ResponseWriter, r *http.Request) {
	if h.backendURL == "" {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	resp, err := h.forward(r.Context(), http.MethodGet, h.backendURL+"/api/auth/check", nil, r)
	if err != nil {
		h.logger.Warn("Auth backend unreachable", slog.Any("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	defer resp.Body.Close()
	// Bare status relay; the body is intentionally dropped.
	w.WriteHeader(resp.StatusCode)
}

func (h *Handlers) handleAuth(w http.ResponseWriter, r *http.Request) {
	failure := map[string]any{"success": false, "message": "authentication backend unavailable"}
	if h.backendURL == "" {
		h.writeJSON(w, http.StatusServiceUnavailable, failure)
		return
	}
	resp, err := h.forward(r.Context(), http.MethodPost, h.backendURL+"/api/auth", r.Body, r)
	if err != nil {
		h.logger.Warn("Auth backend unreachable", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, failure)
		return
	}
	defer resp.Body.Close()
	h.relay(w, resp, true)
}

// forward builds an upstream request carrying the caller's cookies.
func (h *Handlers) forward(ctx context.Context, method, url string, body io.Reader, r *http.Request) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if cookies := r.Header.Get("Cookie"); cookies != "" {
		req.Header.Set("Cookie", cookies)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	return h.httpClient.Do(req)
}

// relay copies an upstream response to the client, optionally including
// Set-Cookie headers (needed by the auth route to establish the session).
func (h *Handlers) relay(w http.ResponseWriter, resp *http.Response, relayCookies bool) {
	if relayCookies {
		for _, c := range resp.Header.Values("Set-Cookie") {
			w.Header().Add("Set-Cookie", c)
		}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.logger.Warn("Failed to copy backend response", slog.Any("error", err))
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to encode response", slog.Any("error", err))
	}
}
