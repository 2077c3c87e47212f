package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profsynapse/hubspot-mcp/internal/analytics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMux(t *testing.T, backendURL string, store *analytics.Store) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewHandlers(backendURL, store, nil, testLogger()).RegisterRoutes(mux)
	return mux
}

func TestAnalyticsLocalStore(t *testing.T) {
	store, err := analytics.New(filepath.Join(t.TempDir(), "analytics.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	store.RecordToolCall(context.Background(), "hubspotContacts", "hubspotGetContact", 50*time.Millisecond, true)

	mux := newMux(t, "", store)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics?days=7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var summary analytics.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.ToolUsage, 1)
	assert.Equal(t, "hubspotGetContact", summary.ToolUsage[0].Tool)
	assert.Equal(t, 1, summary.Summary.TotalCalls)
}

func TestAnalyticsProxiesBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analytics", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"toolUsage":[],"errors":[],"summary":{"totalCalls":9}}`))
	}))
	defer backend.Close()

	mux := newMux(t, backend.URL, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/analytics?days=30", nil)
	req.Header.Set("Cookie", "session=abc")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCalls":9`)
}

func TestAnalyticsBackendUnreachableFallsBack(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	backend.Close() // force connection refused

	mux := newMux(t, backend.URL, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	// The fallback keeps the full response shape so the dashboard renders.
	assert.Contains(t, payload, "toolUsage")
	assert.Contains(t, payload, "errors")
	assert.Contains(t, payload, "summary")
}

func TestAuthCheck(t *testing.T) {
	t.Run("relays backend status without body", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/check", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("ignored"))
		}))
		defer backend.Close()

		mux := newMux(t, backend.URL, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("no backend configured", func(t *testing.T) {
		mux := newMux(t, "", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAuth(t *testing.T) {
	t.Run("relays body and set-cookie", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"email":"jo@acme.com","password":"pw"}`, string(body))
			w.Header().Set("Set-Cookie", "session=xyz; HttpOnly")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer backend.Close()

		mux := newMux(t, backend.URL, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"email":"jo@acme.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "session=xyz; HttpOnly", w.Header().Get("Set-Cookie"))
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("backend unreachable reports failure shape", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		backend.Close()

		mux := newMux(t, backend.URL, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{}`)))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Equal(t, false, payload["success"])
	})
}
