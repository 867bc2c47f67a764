package commands

import (
	"context"

	"trinket/internal/domain"
	"trinket/internal/ports"
)

// ListSnippetsCommand lists snippets newest first
type ListSnippetsCommand struct {
	repo  ports.SnippetRepository
	Limit int // 0 means no limit
}

// NewListSnippetsCommand creates a new ListSnippetsCommand
func NewListSnippetsCommand(repo ports.SnippetRepository, limit int) *ListSnippetsCommand {
	return &ListSnippetsCommand{
		repo:  repo,
		Limit: limit,
	}
}

// Execute runs the list command
func (c *ListSnippetsCommand) Execute(ctx context.Context) ([]domain.Snippet, error) {
	snippets, err := c.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return limit(snippets, c.Limit), nil
}

// GetSnippetCommand fetches a single snippet by ID
type GetSnippetCommand struct {
	repo ports.SnippetRepository
	ID   string
}

// NewGetSnippetCommand creates a new GetSnippetCommand
func NewGetSnippetCommand(repo ports.SnippetRepository, id string) *GetSnippetCommand {
	return &GetSnippetCommand{
		repo: repo,
		ID:   id,
	}
}

// Execute runs the get command
func (c *GetSnippetCommand) Execute(ctx context.Context) (*domain.Snippet, error) {
	return c.repo.Get(c.ID)
}

func limit(snippets []domain.Snippet, n int) []domain.Snippet {
	if n > 0 && len(snippets) > n {
		return snippets[:n]
	}
	return snippets
}
