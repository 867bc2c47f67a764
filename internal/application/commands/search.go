package commands

import (
	"context"

	"trinket/internal/domain"
	"trinket/internal/ports"
)

// SearchSnippetsCommand filters snippets by case-insensitive substring
type SearchSnippetsCommand struct {
	repo  ports.SnippetRepository
	Query string
	Limit int // 0 means no limit
}

// NewSearchSnippetsCommand creates a new SearchSnippetsCommand
func NewSearchSnippetsCommand(repo ports.SnippetRepository, query string, limit int) *SearchSnippetsCommand {
	return &SearchSnippetsCommand{
		repo:  repo,
		Query: query,
		Limit: limit,
	}
}

// Execute loads the corpus and returns the matching snippets, newest first
func (c *SearchSnippetsCommand) Execute(ctx context.Context) ([]domain.Snippet, error) {
	corpus, err := c.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	indices := domain.Search(c.Query, corpus)
	results := make([]domain.Snippet, 0, len(indices))
	for _, idx := range indices {
		results = append(results, corpus[idx])
	}
	return limit(results, c.Limit), nil
}
