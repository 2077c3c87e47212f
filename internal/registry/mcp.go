package registry

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AttachMCP advertises every registered tool on an mcp-go server. Each tool
// keeps its declared JSON schema verbatim (raw schema, not rebuilt through
// the option builders) so the agent sees exactly what the registry validates
// against. Handler results are serialized to JSON text content; dispatch
// failures become the uniform failure envelope flagged as a tool error.
func (r *Registry) AttachMCP(s *server.MCPServer) error {
	for _, def := range r.Tools() {
		schemaJSON, err := json.Marshal(def.InputSchema)
		if err != nil {
			return err
		}
		name := def.Name
		tool := mcp.NewToolWithRawSchema(name, def.Description, schemaJSON)
		s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := r.Dispatch(ctx, name, request.GetArguments())
			if err != nil {
				payload, merr := json.Marshal(FailureEnvelope(err))
				if merr != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultError(string(payload)), nil
			}
			payload, err := json.Marshal(result)
			if err != nil {
				r.logger.Error("Failed to marshal tool result", slog.String("tool", name), slog.Any("error", err))
				payload, _ = json.Marshal(FailureEnvelope(err))
				return mcp.NewToolResultError(string(payload)), nil
			}
			return mcp.NewToolResultText(string(payload)), nil
		})
	}
	r.logger.Info("Attached tools to MCP server", slog.Int("count", len(r.tools)))
	return nil
}
