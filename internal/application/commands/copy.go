package commands

import (
	"context"
	"fmt"

	"trinket/internal/domain"
	"trinket/internal/ports"
)

// CopySnippetCommand places a stored snippet on the clipboard
type CopySnippetCommand struct {
	repo ports.SnippetRepository
	clip ports.ClipboardSink
	ID   string
}

// NewCopySnippetCommand creates a new CopySnippetCommand
func NewCopySnippetCommand(repo ports.SnippetRepository, clip ports.ClipboardSink, id string) *CopySnippetCommand {
	return &CopySnippetCommand{
		repo: repo,
		clip: clip,
		ID:   id,
	}
}

// Execute copies the snippet content and returns the snippet
func (c *CopySnippetCommand) Execute(ctx context.Context) (*domain.Snippet, error) {
	snippet, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}
	if err := c.clip.WriteText(snippet.Content); err != nil {
		return nil, fmt.Errorf("copy %s: %w", c.ID, err)
	}
	return snippet, nil
}
