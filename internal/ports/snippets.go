package ports

import "trinket/internal/domain"

// SnippetRepository defines the interface for snippet storage operations
type SnippetRepository interface {
	// Initialize ensures the backing storage exists and is writable
	Initialize() error

	// Save persists content as a new snippet and returns it
	Save(content string) (*domain.Snippet, error)

	// LoadAll returns every stored snippet, newest first
	LoadAll() ([]domain.Snippet, error)

	// Get returns a single snippet by ID
	Get(id string) (*domain.Snippet, error)
}
