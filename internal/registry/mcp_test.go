package registry

import (
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/profsynapse/hubspot-mcp/internal/domain"
)

func TestAttachMCP(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Register(domain.BCP{Domain: "d", Tools: []domain.ToolDefinition{
		echoTool("toolA"),
		echoTool("toolB"),
	}}))

	s := server.NewMCPServer("test", "0.0.0")
	require.NoError(t, r.AttachMCP(s))
}
