package transport

import (
	"context"
	"net/http"
)

// mcpSessionHeader is the session identifier header of the streamable HTTP
// transport.
const mcpSessionHeader = "Mcp-Session-Id"

// SessionRecorder receives session lifecycle events, typically the
// analytics store.
type SessionRecorder interface {
	OpenSession(ctx context.Context, id string)
	CloseSession(ctx context.Context, id string)
}

// Middleware wraps the streamable HTTP handler with session tracking: a
// request carrying an unseen Mcp-Session-Id opens a Session, and a DELETE
// (the protocol's session-termination request) closes it. The wrapped
// handler still does all protocol work.
func Middleware(manager *Manager, recorder SessionRecorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(mcpSessionHeader)
		if id != "" {
			if _, tracked := manager.Get(id); !tracked && r.Method != http.MethodDelete {
				s := manager.Open(id)
				if recorder != nil {
					recorder.OpenSession(r.Context(), s.ID())
					s.OnClose(func() {
						recorder.CloseSession(context.Background(), s.ID())
					})
				}
			}
		}

		next.ServeHTTP(w, r)

		if id != "" && r.Method == http.MethodDelete {
			if s, ok := manager.Get(id); ok {
				s.Close()
			}
		}
	})
}
