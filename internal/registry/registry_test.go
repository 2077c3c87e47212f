package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
	"github.com/profsynapse/hubspot-mcp/internal/enhancer"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorderSpy captures analytics calls for assertions.
type recorderSpy struct {
	mu        sync.Mutex
	calls     []string
	successes []bool
	codes     []string
}

func (r *recorderSpy) RecordToolCall(_ context.Context, _, tool string, _ time.Duration, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, tool)
	r.successes = append(r.successes, success)
}

func (r *recorderSpy) RecordError(_ context.Context, _, _, code, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func echoTool(name string) domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        name,
		Description: "echoes its input",
		Operation:   "get",
		InputSchema: domain.ObjectSchema(map[string]domain.JSONSchemaProps{
			"id": domain.StringProp("identifier"),
		}, "id"),
		Handler: func(_ context.Context, params map[string]any) (any, error) {
			return map[string]any{"id": params["id"]}, nil
		},
	}
}

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	return New(enhancer.New(enhancer.Tables{}), testLogger(), opts...)
}

func TestRegister(t *testing.T) {
	t.Run("duplicate domain rejected", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Register(domain.BCP{Domain: "contacts", Tools: []domain.ToolDefinition{echoTool("a")}}))
		err := r.Register(domain.BCP{Domain: "contacts", Tools: []domain.ToolDefinition{echoTool("b")}})
		assert.ErrorContains(t, err, "duplicate bcp domain")
	})

	t.Run("cross-pack name collision rejected", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Register(domain.BCP{Domain: "contacts", Tools: []domain.ToolDefinition{echoTool("shared")}}))
		err := r.Register(domain.BCP{Domain: "companies", Tools: []domain.ToolDefinition{echoTool("shared")}})
		assert.ErrorContains(t, err, "tool name collision")
	})

	t.Run("failed registration leaves registry untouched", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Register(domain.BCP{Domain: "contacts", Tools: []domain.ToolDefinition{echoTool("a")}}))
		err := r.Register(domain.BCP{Domain: "companies", Tools: []domain.ToolDefinition{echoTool("b"), echoTool("a")}})
		require.Error(t, err)
		assert.Len(t, r.Tools(), 1)
		_, derr := r.Dispatch(context.Background(), "b", map[string]any{"id": "1"})
		assert.True(t, domain.IsCode(derr, domain.CodeNotFound))
	})

	t.Run("tool without handler rejected", func(t *testing.T) {
		r := newTestRegistry(t)
		bad := echoTool("a")
		bad.Handler = nil
		err := r.Register(domain.BCP{Domain: "contacts", Tools: []domain.ToolDefinition{bad}})
		assert.ErrorContains(t, err, "no handler")
	})

	t.Run("tools listed in registration order", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Register(domain.BCP{Domain: "d1", Tools: []domain.ToolDefinition{echoTool("z"), echoTool("a")}}))
		require.NoError(t, r.Register(domain.BCP{Domain: "d2", Tools: []domain.ToolDefinition{echoTool("m")}}))
		var names []string
		for _, def := range r.Tools() {
			names = append(names, def.Name)
		}
		assert.Equal(t, []string{"z", "a", "m"}, names)
	})
}

func TestDispatch(t *testing.T) {
	t.Run("unknown tool is NOT_FOUND", func(t *testing.T) {
		r := newTestRegistry(t)
		_, err := r.Dispatch(context.Background(), "nope", nil)
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	})

	t.Run("validation failure short-circuits before handler", func(t *testing.T) {
		r := newTestRegistry(t)
		invoked := false
		tool := echoTool("strict")
		tool.Handler = func(_ context.Context, _ map[string]any) (any, error) {
			invoked = true
			return nil, nil
		}
		require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{tool}}))

		_, err := r.Dispatch(context.Background(), "strict", map[string]any{})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
		assert.False(t, invoked, "handler must not run on invalid input")
	})

	t.Run("handler error classified and recorded", func(t *testing.T) {
		rec := &recorderSpy{}
		r := newTestRegistry(t, WithRecorder(rec))
		tool := echoTool("failing")
		tool.Handler = func(_ context.Context, _ map[string]any) (any, error) {
			return nil, domain.NewErrorWithStatus(domain.CodeAuth, "token rejected", http.StatusUnauthorized)
		}
		require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{tool}}))

		_, err := r.Dispatch(context.Background(), "failing", map[string]any{"id": "1"})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.CodeAuth))
		assert.Equal(t, []string{"AUTH_ERROR"}, rec.codes)
		assert.Equal(t, []bool{false}, rec.successes)
	})

	t.Run("plain handler error becomes API_ERROR", func(t *testing.T) {
		r := newTestRegistry(t)
		tool := echoTool("plain")
		tool.Handler = func(_ context.Context, _ map[string]any) (any, error) {
			return nil, errors.New("socket closed")
		}
		require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{tool}}))

		_, err := r.Dispatch(context.Background(), "plain", map[string]any{"id": "1"})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.CodeAPI))
	})

	t.Run("success recorded with suggestions injected", func(t *testing.T) {
		rec := &recorderSpy{}
		r := New(enhancer.New(enhancer.Tables{
			ByOperation: map[string][]string{"get": {"followUpTool"}},
		}), testLogger(), WithRecorder(rec))
		require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{echoTool("ok")}}))

		result, err := r.Dispatch(context.Background(), "ok", map[string]any{"id": "42"})
		require.NoError(t, err)
		m, ok := result.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "42", m["id"])
		assert.Equal(t, []string{"followUpTool"}, m["suggestions"])
		assert.Equal(t, []bool{true}, rec.successes)
	})

	t.Run("non-map result wrapped only when suggestions exist", func(t *testing.T) {
		r := New(enhancer.New(enhancer.Tables{
			ByOperation: map[string][]string{"get": {"followUpTool"}},
		}), testLogger())
		tool := echoTool("scalar")
		tool.Handler = func(_ context.Context, _ map[string]any) (any, error) { return "hello", nil }
		require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{tool}}))

		result, err := r.Dispatch(context.Background(), "scalar", map[string]any{"id": "1"})
		require.NoError(t, err)
		m, ok := result.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "hello", m["result"])
	})

	t.Run("nil params treated as empty", func(t *testing.T) {
		r := newTestRegistry(t)
		tool := echoTool("lenient")
		tool.InputSchema = domain.ObjectSchema(nil)
		require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{tool}}))
		_, err := r.Dispatch(context.Background(), "lenient", nil)
		assert.NoError(t, err)
	})
}

func TestFailureEnvelope(t *testing.T) {
	env := FailureEnvelope(domain.NewErrorWithStatus(domain.CodeNotFound, "contact 9 not found", http.StatusNotFound))
	assert.Equal(t, "contact 9 not found", env.Error.Message)
	assert.Equal(t, domain.CodeNotFound, env.Error.Code)
	assert.Equal(t, http.StatusNotFound, env.Error.Status)

	env = FailureEnvelope(errors.New("oops"))
	assert.Equal(t, domain.CodeAPI, env.Error.Code)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
}
