package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"trinket/internal/application/commands"
	"trinket/internal/domain"
	"trinket/internal/ports"
)

const defaultLimit = 20

// RegisterReadTools adds all read-only snippet tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.SnippetRepository) {
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(searchTool(), searchHandler(repo))
	s.AddTool(getTool(), getHandler(repo))
}

// --- list_snippets ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_snippets",
		mcp.WithDescription("List saved snippets, newest first. Each line shows the snippet ID, creation time and preview."),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of snippets to return (default %d, 0 for all)", defaultLimit)),
		),
	)
}

func listHandler(repo ports.SnippetRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", defaultLimit)

		snippets, err := commands.NewListSnippetsCommand(repo, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(snippets, formatSnippet)
	}
}

// --- search_snippets ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_snippets",
		mcp.WithDescription("Find snippets whose full text contains the query, ignoring case. Results are newest first."),
		mcp.WithString("query",
			mcp.Description("Substring to look for"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of snippets to return (default %d, 0 for all)", defaultLimit)),
		),
	)
}

func searchHandler(repo ports.SnippetRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		limit := req.GetInt("limit", defaultLimit)

		snippets, err := commands.NewSearchSnippetsCommand(repo, query, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(snippets, formatSnippet)
	}
}

// --- get_snippet ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_snippet",
		mcp.WithDescription("Return the full text of a snippet by its ID."),
		mcp.WithString("id",
			mcp.Description("Snippet ID as shown by list_snippets"),
			mcp.Required(),
		),
	)
}

func getHandler(repo ports.SnippetRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		snippet, err := commands.NewGetSnippetCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(snippet.Content), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatSnippet(s domain.Snippet) string {
	return fmt.Sprintf("%s  %s  %s", s.ID, s.Created.Format("2006-01-02 15:04"), s.Preview)
}
