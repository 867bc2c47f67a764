package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"trinket/internal/application/commands"
	"trinket/internal/ports"
)

// RegisterWriteTools adds all write snippet tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.SnippetRepository) {
	s.AddTool(saveTool(), saveHandler(repo))
}

// --- save_snippet ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save_snippet",
		mcp.WithDescription("Save a new snippet. The text is stored exactly as given."),
		mcp.WithString("content",
			mcp.Description("Snippet text; must not be empty"),
			mcp.Required(),
		),
	)
}

func saveHandler(repo ports.SnippetRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content := req.GetString("content", "")

		snippet, err := commands.NewSaveSnippetCommand(repo, content).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Saved snippet %s", snippet.ID)), nil
	}
}
