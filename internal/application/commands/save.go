package commands

import (
	"context"

	"trinket/internal/application"
	"trinket/internal/domain"
	"trinket/internal/ports"
)

// SaveSnippetCommand persists a new snippet
type SaveSnippetCommand struct {
	repo    ports.SnippetRepository
	Content string
}

// NewSaveSnippetCommand creates a new SaveSnippetCommand
func NewSaveSnippetCommand(repo ports.SnippetRepository, content string) *SaveSnippetCommand {
	return &SaveSnippetCommand{
		repo:    repo,
		Content: content,
	}
}

// Validate rejects empty content; the store persists whatever it is given
func (c *SaveSnippetCommand) Validate() error {
	return application.ValidateContent(c.Content)
}

// Execute validates and saves the snippet
func (c *SaveSnippetCommand) Execute(ctx context.Context) (*domain.Snippet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.repo.Save(c.Content)
}
