package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"trinket/internal/ports"
)

// NewServer creates an MCP server exposing the snippet store as tools
func NewServer(repo ports.SnippetRepository, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"trinket-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	RegisterReadTools(s, repo)
	RegisterWriteTools(s, repo)
	return s
}
